package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFreightNotFound        = errors.New("freight request not found")
	ErrInvalidFreightInput    = errors.New("invalid freight request payload")
	ErrInvalidStatusFilter    = errors.New("invalid status filter")
	ErrUserNotFound           = errors.New("user profile not found")
	ErrCarrierNotFound        = errors.New("carrier profile not found")
	ErrNotRequestOwner        = errors.New("caller does not own this freight request")
	ErrNotAssignedCarrier     = errors.New("caller is not the assigned carrier")
	ErrIllegalState           = errors.New("operation not allowed in the current request status")
	ErrRequestAlreadyAssigned = errors.New("freight request already has a carrier")
	ErrInvalidPhoto           = errors.New("photo type not allowed")
)

var allowedPhotoExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {},
}

// CreateFreightInput carries the client-supplied fields of a new request.
type CreateFreightInput struct {
	OriginAddress         string
	DestinationAddress    string
	OriginLocationID      string
	DestinationLocationID string
	CargoDetails          string
	Measurements          string
	WeightKg              int
	PickupTime            *time.Time
}

// FreightUpdate holds the owner-editable fields; nil means "leave as is".
type FreightUpdate struct {
	OriginAddress         *string
	DestinationAddress    *string
	OriginLocationID      *string
	DestinationLocationID *string
	CargoDetails          *string
	Measurements          *string
	WeightKg              *int
	PickupTime            *time.Time
	ClearPickupTime       bool
}

// IFreightUseCase exposes the freight request lifecycle.
//
// Transitions (StartTrip, CompleteTrip, the two cancels) are conditional
// writes keyed on the current status, so a raced call loses cleanly
// instead of double-applying. Every committed transition publishes one
// broadcast event and mails the client; both happen after commit and
// neither can fail the operation.
type IFreightUseCase interface {
	Create(ctx context.Context, authUID string, in CreateFreightInput) (entities.FreightRequest, error)
	GetByID(ctx context.Context, id string) (entities.FreightRequest, error)
	List(ctx context.Context, status string) ([]entities.FreightRequest, error)
	ListMine(ctx context.Context, authUID string) ([]entities.FreightRequest, error)
	ListAvailable(ctx context.Context, authUID string) ([]entities.FreightRequest, error)
	ListAssigned(ctx context.Context, authUID string) ([]entities.FreightRequest, error)
	ListHistory(ctx context.Context, authUID string) ([]entities.FreightRequest, error)
	Update(ctx context.Context, authUID, id string, upd FreightUpdate) (entities.FreightRequest, error)
	Delete(ctx context.Context, authUID, id string) error
	StartTrip(ctx context.Context, authUID, id string) (entities.FreightRequest, error)
	CompleteTrip(ctx context.Context, authUID, id string) (entities.FreightRequest, error)
	CancelByClient(ctx context.Context, authUID, id string) (entities.FreightRequest, error)
	CancelByCarrier(ctx context.Context, authUID, id string) (entities.FreightRequest, error)
	AttachPhoto(ctx context.Context, authUID, id, filename, contentType string, body io.Reader) (entities.FreightRequest, error)
	OpenPhoto(ctx context.Context, ref string) (io.ReadCloser, string, error)
}

type FreightUseCase struct {
	freights  interfaces.IFreightRepository
	quotes    interfaces.IQuoteRepository
	lifecycle interfaces.ILifecycleRepository
	carriers  interfaces.ICarrierRepository
	users     interfaces.IUserRepository
	notifier  interfaces.INotifier
	mailer    interfaces.IMailer
	photos    interfaces.IPhotoStore
}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase(
	freights interfaces.IFreightRepository,
	quotes interfaces.IQuoteRepository,
	lifecycle interfaces.ILifecycleRepository,
	carriers interfaces.ICarrierRepository,
	users interfaces.IUserRepository,
	notifier interfaces.INotifier,
	mailer interfaces.IMailer,
	photos interfaces.IPhotoStore,
) *FreightUseCase {
	return &FreightUseCase{
		freights:  freights,
		quotes:    quotes,
		lifecycle: lifecycle,
		carriers:  carriers,
		users:     users,
		notifier:  notifier,
		mailer:    mailer,
		photos:    photos,
	}
}

func (u *FreightUseCase) Create(ctx context.Context, authUID string, in CreateFreightInput) (entities.FreightRequest, error) {
	client, err := u.clientByAuthUID(ctx, authUID)
	if err != nil {
		return entities.FreightRequest{}, err
	}

	in.OriginAddress = strings.TrimSpace(in.OriginAddress)
	in.DestinationAddress = strings.TrimSpace(in.DestinationAddress)
	if in.OriginAddress == "" || in.DestinationAddress == "" ||
		strings.TrimSpace(in.OriginLocationID) == "" || strings.TrimSpace(in.DestinationLocationID) == "" ||
		strings.TrimSpace(in.CargoDetails) == "" {
		return entities.FreightRequest{}, ErrInvalidFreightInput
	}
	if in.WeightKg < 0 {
		return entities.FreightRequest{}, ErrInvalidFreightInput
	}

	now := time.Now().UTC()
	f := entities.FreightRequest{
		ID:                    uuid.NewString(),
		ClientID:              client.ID,
		OriginLocationID:      strings.TrimSpace(in.OriginLocationID),
		DestinationLocationID: strings.TrimSpace(in.DestinationLocationID),
		OriginAddress:         in.OriginAddress,
		DestinationAddress:    in.DestinationAddress,
		CargoDetails:          strings.TrimSpace(in.CargoDetails),
		Measurements:          strings.TrimSpace(in.Measurements),
		WeightKg:              in.WeightKg,
		PickupTime:            in.PickupTime,
		Status:                entities.FreightStatusWithoutCarrier,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.freights.Create(ctx, f)
	if err != nil {
		return entities.FreightRequest{}, err
	}

	u.notifier.Publish(interfaces.EventRequestCreated, map[string]any{
		"request_id": created.ID,
		"client_id":  created.ClientID,
	})
	u.mailStatusAsync(created, client)
	return created, nil
}

func (u *FreightUseCase) GetByID(ctx context.Context, id string) (entities.FreightRequest, error) {
	f, err := u.activeByID(ctx, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	return f, nil
}

func (u *FreightUseCase) List(ctx context.Context, status string) ([]entities.FreightRequest, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		// Unfiltered listing walks every status bucket; the request
		// volume here is admin/debug traffic, not a hot path.
		var all []entities.FreightRequest
		for _, s := range []entities.FreightStatus{
			entities.FreightStatusWithoutCarrier, entities.FreightStatusPending,
			entities.FreightStatusEnRoute, entities.FreightStatusCompleted,
			entities.FreightStatusCancelled,
		} {
			batch, err := u.freights.ListByStatus(ctx, s)
			if err != nil {
				return nil, err
			}
			all = append(all, dropDeleted(batch)...)
		}
		return all, nil
	}
	if !entities.ValidFreightStatus(status) {
		return nil, ErrInvalidStatusFilter
	}
	batch, err := u.freights.ListByStatus(ctx, entities.FreightStatus(status))
	if err != nil {
		return nil, err
	}
	return dropDeleted(batch), nil
}

func (u *FreightUseCase) ListMine(ctx context.Context, authUID string) ([]entities.FreightRequest, error) {
	client, err := u.clientByAuthUID(ctx, authUID)
	if err != nil {
		return nil, err
	}
	batch, err := u.freights.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return dropDeleted(batch), nil
}

// ListAvailable is the zone matching query: open requests whose origin
// or destination falls inside the calling carrier's covered zones. Pure
// set membership, no ranking.
func (u *FreightUseCase) ListAvailable(ctx context.Context, authUID string) ([]entities.FreightRequest, error) {
	_, carrier, err := u.carrierByAuthUID(ctx, authUID)
	if err != nil {
		return nil, err
	}
	zones := carrier.ZoneSet()
	if len(zones) == 0 {
		return []entities.FreightRequest{}, nil
	}

	open, err := u.freights.ListByStatus(ctx, entities.FreightStatusWithoutCarrier)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.FreightRequest, 0, len(open))
	for _, f := range open {
		if !f.Deleted && f.InZones(zones) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

func (u *FreightUseCase) ListAssigned(ctx context.Context, authUID string) ([]entities.FreightRequest, error) {
	return u.listForCarrier(ctx, authUID, true)
}

func (u *FreightUseCase) ListHistory(ctx context.Context, authUID string) ([]entities.FreightRequest, error) {
	return u.listForCarrier(ctx, authUID, false)
}

func (u *FreightUseCase) listForCarrier(ctx context.Context, authUID string, activeOnly bool) ([]entities.FreightRequest, error) {
	_, carrier, err := u.carrierByAuthUID(ctx, authUID)
	if err != nil {
		return nil, err
	}
	quotes, err := u.quotes.ListByCarrierID(ctx, carrier.ID)
	if err != nil {
		return nil, err
	}

	out := []entities.FreightRequest{}
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusAccepted {
			continue
		}
		f, err := u.freights.GetByID(ctx, q.RequestID)
		if err != nil {
			return nil, err
		}
		if f.ID == "" || f.Deleted || f.AcceptedQuoteID != q.ID {
			continue
		}
		if activeOnly && f.Status != entities.FreightStatusPending && f.Status != entities.FreightStatusEnRoute {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (u *FreightUseCase) Update(ctx context.Context, authUID, id string, upd FreightUpdate) (entities.FreightRequest, error) {
	f, _, err := u.ownedByID(ctx, authUID, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if f.Status.Terminal() {
		return entities.FreightRequest{}, ErrIllegalState
	}

	if upd.OriginAddress != nil {
		f.OriginAddress = strings.TrimSpace(*upd.OriginAddress)
	}
	if upd.DestinationAddress != nil {
		f.DestinationAddress = strings.TrimSpace(*upd.DestinationAddress)
	}
	if upd.OriginLocationID != nil {
		f.OriginLocationID = strings.TrimSpace(*upd.OriginLocationID)
	}
	if upd.DestinationLocationID != nil {
		f.DestinationLocationID = strings.TrimSpace(*upd.DestinationLocationID)
	}
	if upd.CargoDetails != nil {
		f.CargoDetails = strings.TrimSpace(*upd.CargoDetails)
	}
	if upd.Measurements != nil {
		f.Measurements = strings.TrimSpace(*upd.Measurements)
	}
	if upd.WeightKg != nil {
		if *upd.WeightKg < 0 {
			return entities.FreightRequest{}, ErrInvalidFreightInput
		}
		f.WeightKg = *upd.WeightKg
	}
	if upd.ClearPickupTime {
		f.PickupTime = nil
	} else if upd.PickupTime != nil {
		f.PickupTime = upd.PickupTime
	}
	if f.OriginAddress == "" || f.DestinationAddress == "" || f.CargoDetails == "" ||
		f.OriginLocationID == "" || f.DestinationLocationID == "" {
		return entities.FreightRequest{}, ErrInvalidFreightInput
	}
	f.UpdatedAt = time.Now().UTC()

	return u.freights.Update(ctx, f)
}

func (u *FreightUseCase) Delete(ctx context.Context, authUID, id string) error {
	f, _, err := u.ownedByID(ctx, authUID, id)
	if err != nil {
		return err
	}
	// Once the trip is running (or done) the record stays.
	if f.Status == entities.FreightStatusEnRoute || f.Status == entities.FreightStatusCompleted {
		return ErrIllegalState
	}
	if err := u.freights.SoftDelete(ctx, f.ID); err != nil {
		return err
	}
	if f.PhotoRef != "" {
		if err := u.photos.Delete(ctx, f.PhotoRef); err != nil {
			log.Printf("[freight][usecase] orphan photo %s not deleted: %v", f.PhotoRef, err)
		}
	}
	return nil
}

func (u *FreightUseCase) StartTrip(ctx context.Context, authUID, id string) (entities.FreightRequest, error) {
	f, client, err := u.assignedToCaller(ctx, authUID, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if f.Status != entities.FreightStatusPending {
		return entities.FreightRequest{}, ErrIllegalState
	}

	updated, err := u.freights.UpdateStatus(ctx, f.ID, entities.FreightStatusPending, entities.FreightStatusEnRoute)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if updated.ID == "" {
		// Lost a race with a cancel; the conditional write did not apply.
		return entities.FreightRequest{}, ErrIllegalState
	}

	u.notifier.Publish(interfaces.EventTripStarted, map[string]any{
		"request_id": updated.ID,
		"carrier_id": quoteCarrierID(ctx, u.quotes, updated.AcceptedQuoteID),
	})
	u.mailStatusAsync(updated, client)
	return updated, nil
}

func (u *FreightUseCase) CompleteTrip(ctx context.Context, authUID, id string) (entities.FreightRequest, error) {
	f, client, err := u.assignedToCaller(ctx, authUID, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if f.Status != entities.FreightStatusEnRoute {
		return entities.FreightRequest{}, ErrIllegalState
	}

	updated, err := u.freights.UpdateStatus(ctx, f.ID, entities.FreightStatusEnRoute, entities.FreightStatusCompleted)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if updated.ID == "" {
		return entities.FreightRequest{}, ErrIllegalState
	}

	u.notifier.Publish(interfaces.EventTripCompleted, map[string]any{
		"request_id": updated.ID,
		"carrier_id": quoteCarrierID(ctx, u.quotes, updated.AcceptedQuoteID),
		"may_rate":   true,
	})
	u.mailStatusAsync(updated, client)
	return updated, nil
}

func (u *FreightUseCase) CancelByClient(ctx context.Context, authUID, id string) (entities.FreightRequest, error) {
	f, client, err := u.ownedByID(ctx, authUID, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if f.Status != entities.FreightStatusWithoutCarrier {
		return entities.FreightRequest{}, ErrIllegalState
	}

	open, err := u.pendingQuoteIDs(ctx, f.ID)
	if err != nil {
		return entities.FreightRequest{}, err
	}

	log.Printf("[freight][usecase] client cancel request_id=%s open_quotes=%d", f.ID, len(open))
	err = u.lifecycle.CancelWithQuotes(ctx, f.ID, entities.FreightStatusWithoutCarrier, open)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.FreightRequest{}, ErrIllegalState
	}
	if err != nil {
		return entities.FreightRequest{}, err
	}

	f.Status = entities.FreightStatusCancelled
	u.notifier.Publish(interfaces.EventRequestCancelled, map[string]any{
		"request_id": f.ID,
		"client_id":  f.ClientID,
		"by":         "client",
	})
	u.mailStatusAsync(f, client)
	return f, nil
}

func (u *FreightUseCase) CancelByCarrier(ctx context.Context, authUID, id string) (entities.FreightRequest, error) {
	f, client, err := u.assignedToCaller(ctx, authUID, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if f.Status != entities.FreightStatusPending && f.Status != entities.FreightStatusEnRoute {
		return entities.FreightRequest{}, ErrIllegalState
	}

	// Terminal: a carrier cancellation does not reopen bidding.
	log.Printf("[freight][usecase] carrier cancel request_id=%s from=%s", f.ID, f.Status)
	err = u.lifecycle.CancelWithQuotes(ctx, f.ID, f.Status, nil)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.FreightRequest{}, ErrIllegalState
	}
	if err != nil {
		return entities.FreightRequest{}, err
	}

	carrierID := quoteCarrierID(ctx, u.quotes, f.AcceptedQuoteID)

	// The cancel transaction dropped the quote binding with the status.
	f.Status = entities.FreightStatusCancelled
	f.AcceptedQuoteID = ""
	u.notifier.Publish(interfaces.EventRequestCancelled, map[string]any{
		"request_id": f.ID,
		"carrier_id": carrierID,
		"by":         "carrier",
	})
	u.mailStatusAsync(f, client)
	return f, nil
}

func (u *FreightUseCase) AttachPhoto(ctx context.Context, authUID, id, filename, contentType string, body io.Reader) (entities.FreightRequest, error) {
	f, _, err := u.ownedByID(ctx, authUID, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}

	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return entities.FreightRequest{}, ErrInvalidPhoto
	}

	key := "freight_" + f.ID + "_" + uuid.NewString() + ext
	ref, err := u.photos.Save(ctx, key, contentType, body)
	if err != nil {
		return entities.FreightRequest{}, err
	}

	updated, err := u.freights.SetPhotoRef(ctx, f.ID, ref)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if updated.ID == "" {
		return entities.FreightRequest{}, ErrFreightNotFound
	}

	if f.PhotoRef != "" && f.PhotoRef != ref {
		if err := u.photos.Delete(ctx, f.PhotoRef); err != nil {
			log.Printf("[freight][usecase] previous photo %s not deleted: %v", f.PhotoRef, err)
		}
	}
	return updated, nil
}

func (u *FreightUseCase) OpenPhoto(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, "", ErrInvalidPhoto
	}
	return u.photos.Open(ctx, ref)
}

// ---- helpers ----

func (u *FreightUseCase) activeByID(ctx context.Context, id string) (entities.FreightRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FreightRequest{}, ErrInvalidFreightInput
	}
	f, err := u.freights.GetByID(ctx, id)
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if f.ID == "" || f.Deleted {
		return entities.FreightRequest{}, ErrFreightNotFound
	}
	return f, nil
}

func (u *FreightUseCase) clientByAuthUID(ctx context.Context, authUID string) (entities.User, error) {
	authUID = strings.TrimSpace(authUID)
	if authUID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByAuthUID(ctx, authUID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *FreightUseCase) carrierByAuthUID(ctx context.Context, authUID string) (entities.User, entities.Carrier, error) {
	user, err := u.clientByAuthUID(ctx, authUID)
	if err != nil {
		return entities.User{}, entities.Carrier{}, err
	}
	carrier, err := u.carriers.GetByUserID(ctx, user.ID)
	if err != nil {
		return entities.User{}, entities.Carrier{}, err
	}
	if carrier.ID == "" {
		return entities.User{}, entities.Carrier{}, ErrCarrierNotFound
	}
	return user, carrier, nil
}

// ownedByID loads an active request and checks the caller owns it; the
// owning client profile is returned for notification mail.
func (u *FreightUseCase) ownedByID(ctx context.Context, authUID, id string) (entities.FreightRequest, entities.User, error) {
	f, err := u.activeByID(ctx, id)
	if err != nil {
		return entities.FreightRequest{}, entities.User{}, err
	}
	client, err := u.clientByAuthUID(ctx, authUID)
	if err != nil {
		return entities.FreightRequest{}, entities.User{}, err
	}
	if f.ClientID != client.ID {
		return entities.FreightRequest{}, entities.User{}, ErrNotRequestOwner
	}
	return f, client, nil
}

// assignedToCaller loads an active request and checks the caller is the
// carrier behind its accepted quote. The request's client is returned
// for notification mail.
func (u *FreightUseCase) assignedToCaller(ctx context.Context, authUID, id string) (entities.FreightRequest, entities.User, error) {
	f, err := u.activeByID(ctx, id)
	if err != nil {
		return entities.FreightRequest{}, entities.User{}, err
	}
	_, carrier, err := u.carrierByAuthUID(ctx, authUID)
	if err != nil {
		return entities.FreightRequest{}, entities.User{}, err
	}
	if f.AcceptedQuoteID == "" {
		return entities.FreightRequest{}, entities.User{}, ErrIllegalState
	}
	accepted, err := u.quotes.GetByID(ctx, f.AcceptedQuoteID)
	if err != nil {
		return entities.FreightRequest{}, entities.User{}, err
	}
	if accepted.ID == "" || accepted.CarrierID != carrier.ID {
		return entities.FreightRequest{}, entities.User{}, ErrNotAssignedCarrier
	}

	client, err := u.users.GetByID(ctx, f.ClientID)
	if err != nil {
		return entities.FreightRequest{}, entities.User{}, err
	}
	return f, client, nil
}

func (u *FreightUseCase) pendingQuoteIDs(ctx context.Context, requestID string) ([]string, error) {
	quotes, err := u.quotes.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusPending {
			ids = append(ids, q.ID)
		}
	}
	return ids, nil
}

func (u *FreightUseCase) mailStatusAsync(f entities.FreightRequest, client entities.User) {
	if client.Email == "" {
		return
	}
	subject, body := statusEmail(f, client)
	go func() {
		if err := u.mailer.Send(client.Email, subject, body); err != nil {
			log.Printf("[freight][usecase] status mail for request_id=%s failed: %v", f.ID, err)
		}
	}()
}

func dropDeleted(in []entities.FreightRequest) []entities.FreightRequest {
	out := in[:0]
	for _, f := range in {
		if !f.Deleted {
			out = append(out, f)
		}
	}
	return out
}

// quoteCarrierID resolves the carrier behind a quote for event payloads.
// Best effort: events are advisory, a failed lookup just omits the id.
func quoteCarrierID(ctx context.Context, quotes interfaces.IQuoteRepository, quoteID string) string {
	if quoteID == "" {
		return ""
	}
	q, err := quotes.GetByID(ctx, quoteID)
	if err != nil {
		return ""
	}
	return q.CarrierID
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteInput     = errors.New("invalid quote payload")
	ErrDuplicatePendingQuote = errors.New("carrier already has a pending quote for this request")
	ErrQuoteNotPending       = errors.New("quote is no longer pending")
)

// SubmitQuoteInput carries a carrier's bid on an open request.
type SubmitQuoteInput struct {
	RequestID      string
	EstimatedPrice float64
	Comment        string
}

// IQuoteUseCase exposes the bidding operations.
//
// Accept is the concurrent-acceptance critical section: the status
// pre-checks here only produce friendly errors for the common case; the
// invariant itself (at most one accepted quote per request) is enforced
// by the conditional transaction in ILifecycleRepository, and a raced
// call comes back as ErrRequestAlreadyAssigned.
type IQuoteUseCase interface {
	Submit(ctx context.Context, authUID string, in SubmitQuoteInput) (entities.Quote, error)
	ListByFreight(ctx context.Context, requestID, status string) ([]entities.Quote, error)
	Accept(ctx context.Context, authUID, quoteID string) (entities.Quote, error)
	Reject(ctx context.Context, authUID, quoteID string) (entities.Quote, error)
	Withdraw(ctx context.Context, authUID, quoteID string) error
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	freights  interfaces.IFreightRepository
	lifecycle interfaces.ILifecycleRepository
	carriers  interfaces.ICarrierRepository
	users     interfaces.IUserRepository
	notifier  interfaces.INotifier
	mailer    interfaces.IMailer
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	freights interfaces.IFreightRepository,
	lifecycle interfaces.ILifecycleRepository,
	carriers interfaces.ICarrierRepository,
	users interfaces.IUserRepository,
	notifier interfaces.INotifier,
	mailer interfaces.IMailer,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:    quotes,
		freights:  freights,
		lifecycle: lifecycle,
		carriers:  carriers,
		users:     users,
		notifier:  notifier,
		mailer:    mailer,
	}
}

func (u *QuoteUseCase) Submit(ctx context.Context, authUID string, in SubmitQuoteInput) (entities.Quote, error) {
	in.RequestID = strings.TrimSpace(in.RequestID)
	if in.RequestID == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if in.EstimatedPrice <= 0 {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	_, carrier, err := u.carrierByAuthUID(ctx, authUID)
	if err != nil {
		return entities.Quote{}, err
	}

	f, err := u.freights.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Quote{}, err
	}
	if f.ID == "" || f.Deleted {
		return entities.Quote{}, ErrFreightNotFound
	}
	if f.Status != entities.FreightStatusWithoutCarrier {
		return entities.Quote{}, ErrIllegalState
	}

	existing, err := u.quotes.ListByRequestID(ctx, f.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range existing {
		if q.CarrierID == carrier.ID && q.Status == entities.QuoteStatusPending {
			return entities.Quote{}, ErrDuplicatePendingQuote
		}
	}

	q := entities.Quote{
		ID:             uuid.NewString(),
		RequestID:      f.ID,
		CarrierID:      carrier.ID,
		EstimatedPrice: in.EstimatedPrice,
		Comment:        strings.TrimSpace(in.Comment),
		Status:         entities.QuoteStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	err = u.lifecycle.SubmitQuote(ctx, q)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// The request got assigned or cancelled between the read and the
		// conditional put.
		return entities.Quote{}, ErrIllegalState
	}
	if err != nil {
		return entities.Quote{}, err
	}

	u.notifier.Publish(interfaces.EventQuoteSubmitted, map[string]any{
		"request_id": f.ID,
		"quote_id":   q.ID,
		"carrier_id": carrier.ID,
	})
	u.mailQuoteAsync(ctx, f, q)
	return q, nil
}

func (u *QuoteUseCase) ListByFreight(ctx context.Context, requestID, status string) ([]entities.Quote, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidQuoteInput
	}
	quotes, err := u.quotes.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return quotes, nil
	}
	filtered := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == entities.QuoteStatus(status) {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

func (u *QuoteUseCase) Accept(ctx context.Context, authUID, quoteID string) (entities.Quote, error) {
	q, f, err := u.quoteOnOwnedRequest(ctx, authUID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if f.Status != entities.FreightStatusWithoutCarrier {
		return entities.Quote{}, ErrRequestAlreadyAssigned
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	siblings, err := u.quotes.ListByRequestID(ctx, f.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	var siblingIDs []string
	for _, s := range siblings {
		if s.ID != q.ID && s.Status == entities.QuoteStatusPending {
			siblingIDs = append(siblingIDs, s.ID)
		}
	}

	log.Printf("[quote][usecase] accept start request_id=%s quote_id=%s siblings=%d", f.ID, q.ID, len(siblingIDs))
	err = u.lifecycle.AcceptQuote(ctx, f.ID, q.ID, siblingIDs)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[quote][usecase] accept lost race request_id=%s quote_id=%s", f.ID, q.ID)
		return entities.Quote{}, ErrRequestAlreadyAssigned
	}
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] accept committed request_id=%s quote_id=%s", f.ID, q.ID)

	u.notifier.Publish(interfaces.EventQuoteAccepted, map[string]any{
		"request_id": f.ID,
		"quote_id":   q.ID,
		"carrier_id": q.CarrierID,
	})
	for _, id := range siblingIDs {
		u.notifier.Publish(interfaces.EventQuoteRejected, map[string]any{
			"request_id": f.ID,
			"quote_id":   id,
		})
	}

	f.Status = entities.FreightStatusPending
	f.AcceptedQuoteID = q.ID
	if client, cerr := u.users.GetByID(ctx, f.ClientID); cerr == nil && client.Email != "" {
		subject, body := statusEmail(f, client)
		go func() {
			if err := u.mailer.Send(client.Email, subject, body); err != nil {
				log.Printf("[quote][usecase] acceptance mail for request_id=%s failed: %v", f.ID, err)
			}
		}()
	}

	q.Status = entities.QuoteStatusAccepted
	return q, nil
}

func (u *QuoteUseCase) Reject(ctx context.Context, authUID, quoteID string) (entities.Quote, error) {
	q, _, err := u.quoteOnOwnedRequest(ctx, authUID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	updated, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusPending, entities.QuoteStatusRejected)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotPending
	}

	u.notifier.Publish(interfaces.EventQuoteRejected, map[string]any{
		"request_id": updated.RequestID,
		"quote_id":   updated.ID,
	})
	return updated, nil
}

func (u *QuoteUseCase) Withdraw(ctx context.Context, authUID, quoteID string) error {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return ErrInvalidQuoteInput
	}
	_, carrier, err := u.carrierByAuthUID(ctx, authUID)
	if err != nil {
		return err
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuoteNotFound
	}
	if q.CarrierID != carrier.ID {
		return ErrNotRequestOwner
	}
	if q.Status != entities.QuoteStatusPending {
		return ErrQuoteNotPending
	}

	err = u.quotes.DeletePending(ctx, q.ID)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return ErrQuoteNotPending
	}
	return err
}

// ---- helpers ----

func (u *QuoteUseCase) carrierByAuthUID(ctx context.Context, authUID string) (entities.User, entities.Carrier, error) {
	authUID = strings.TrimSpace(authUID)
	if authUID == "" {
		return entities.User{}, entities.Carrier{}, ErrUserNotFound
	}
	user, err := u.users.GetByAuthUID(ctx, authUID)
	if err != nil {
		return entities.User{}, entities.Carrier{}, err
	}
	if user.ID == "" {
		return entities.User{}, entities.Carrier{}, ErrUserNotFound
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

// quoteOnOwnedRequest loads a quote and its parent request, checking the
// caller owns the request.
func (u *QuoteUseCase) quoteOnOwnedRequest(ctx context.Context, authUID, quoteID string) (entities.Quote, entities.FreightRequest, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, entities.FreightRequest{}, ErrInvalidQuoteInput
	}
	user, err := u.users.GetByAuthUID(ctx, strings.TrimSpace(authUID))
	if err != nil {
		return entities.Quote{}, entities.FreightRequest{}, err
	}
	if user.ID == "" {
		return entities.Quote{}, entities.FreightRequest{}, ErrUserNotFound
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, entities.FreightRequest{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, entities.FreightRequest{}, ErrQuoteNotFound
	}
	f, err := u.freights.GetByID(ctx, q.RequestID)
	if err != nil {
		return entities.Quote{}, entities.FreightRequest{}, err
	}
	if f.ID == "" || f.Deleted {
		return entities.Quote{}, entities.FreightRequest{}, ErrFreightNotFound
	}
	if f.ClientID != user.ID {
		return entities.Quote{}, entities.FreightRequest{}, ErrNotRequestOwner
	}
	return q, f, nil
}

func (u *QuoteUseCase) mailQuoteAsync(ctx context.Context, f entities.FreightRequest, q entities.Quote) {
	client, err := u.users.GetByID(ctx, f.ClientID)
	if err != nil || client.Email == "" {
		return
	}
	subject, body := quoteEmail(f, q, client)
	go func() {
		if err := u.mailer.Send(client.Email, subject, body); err != nil {
			log.Printf("[quote][usecase] quote mail for request_id=%s failed: %v", f.ID, err)
		}
	}()
}

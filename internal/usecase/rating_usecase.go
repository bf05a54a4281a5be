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
	ErrRatingNotFound      = errors.New("rating not found")
	ErrInvalidRatingInput  = errors.New("invalid rating payload")
	ErrInvalidRatingScore  = errors.New("rating score must be between 1 and 5")
	ErrRatingExists        = errors.New("request already rated")
	ErrFreightNotCompleted = errors.New("freight request is not completed")
)

// CreateRatingInput carries the client's post-completion feedback.
type CreateRatingInput struct {
	RequestID string
	Score     int
	Comment   string
}

// IRatingUseCase exposes rating creation and lookups.
//
// Creation is guarded three ways: only the request's client, only on a
// completed request, at most once per request. The insert and the
// carrier aggregate update commit in one transaction so the cached
// average can never drift from the rows.
type IRatingUseCase interface {
	Create(ctx context.Context, authUID string, in CreateRatingInput) (entities.Rating, error)
	GetByFreight(ctx context.Context, requestID string) (entities.Rating, error)
	ListByCarrier(ctx context.Context, carrierID string) ([]entities.Rating, error)
}

type RatingUseCase struct {
	ratings   interfaces.IRatingRepository
	freights  interfaces.IFreightRepository
	quotes    interfaces.IQuoteRepository
	users     interfaces.IUserRepository
	lifecycle interfaces.ILifecycleRepository
	notifier  interfaces.INotifier
}

var _ IRatingUseCase = (*RatingUseCase)(nil)

func NewRatingUseCase(
	ratings interfaces.IRatingRepository,
	freights interfaces.IFreightRepository,
	quotes interfaces.IQuoteRepository,
	users interfaces.IUserRepository,
	lifecycle interfaces.ILifecycleRepository,
	notifier interfaces.INotifier,
) *RatingUseCase {
	return &RatingUseCase{
		ratings:   ratings,
		freights:  freights,
		quotes:    quotes,
		users:     users,
		lifecycle: lifecycle,
		notifier:  notifier,
	}
}

func (u *RatingUseCase) Create(ctx context.Context, authUID string, in CreateRatingInput) (entities.Rating, error) {
	in.RequestID = strings.TrimSpace(in.RequestID)
	if in.RequestID == "" {
		return entities.Rating{}, ErrInvalidRatingInput
	}
	if in.Score < entities.MinRatingScore || in.Score > entities.MaxRatingScore {
		return entities.Rating{}, ErrInvalidRatingScore
	}

	client, err := u.users.GetByAuthUID(ctx, strings.TrimSpace(authUID))
	if err != nil {
		return entities.Rating{}, err
	}
	if client.ID == "" {
		return entities.Rating{}, ErrUserNotFound
	}

	f, err := u.freights.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Rating{}, err
	}
	if f.ID == "" || f.Deleted {
		return entities.Rating{}, ErrFreightNotFound
	}
	if f.ClientID != client.ID {
		return entities.Rating{}, ErrNotRequestOwner
	}
	if f.Status != entities.FreightStatusCompleted {
		return entities.Rating{}, ErrFreightNotCompleted
	}
	if f.AcceptedQuoteID == "" {
		return entities.Rating{}, ErrFreightNotCompleted
	}

	accepted, err := u.quotes.GetByID(ctx, f.AcceptedQuoteID)
	if err != nil {
		return entities.Rating{}, err
	}
	if accepted.ID == "" {
		return entities.Rating{}, ErrQuoteNotFound
	}

	r := entities.Rating{
		ID:        uuid.NewString(),
		RequestID: f.ID,
		ClientID:  client.ID,
		CarrierID: accepted.CarrierID,
		Score:     in.Score,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: time.Now().UTC(),
	}

	log.Printf("[rating][usecase] create request_id=%s carrier_id=%s score=%d", r.RequestID, r.CarrierID, r.Score)
	err = u.lifecycle.CreateRating(ctx, r)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Rating{}, ErrRatingExists
	}
	if err != nil {
		return entities.Rating{}, err
	}

	u.notifier.Publish(interfaces.EventRatingCreated, map[string]any{
		"request_id": r.RequestID,
		"carrier_id": r.CarrierID,
		"score":      r.Score,
	})
	return r, nil
}

func (u *RatingUseCase) GetByFreight(ctx context.Context, requestID string) (entities.Rating, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Rating{}, ErrInvalidRatingInput
	}
	r, err := u.ratings.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Rating{}, err
	}
	if r.ID == "" || r.Deleted {
		return entities.Rating{}, ErrRatingNotFound
	}
	return r, nil
}

func (u *RatingUseCase) ListByCarrier(ctx context.Context, carrierID string) ([]entities.Rating, error) {
	carrierID = strings.TrimSpace(carrierID)
	if carrierID == "" {
		return nil, ErrInvalidRatingInput
	}
	all, err := u.ratings.ListByCarrierID(ctx, carrierID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, r := range all {
		if !r.Deleted {
			out = append(out, r)
		}
	}
	return out, nil
}

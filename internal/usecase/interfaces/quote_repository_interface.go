package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quote creation is not here: submitting a quote must be conditioned on
// the parent request's status and lives in ILifecycleRepository.
// UpdateStatus and DeletePending are conditional writes; a failed
// condition yields a zero-value entity / ErrConditionFailed respectively.
type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
	ListByCarrierID(ctx context.Context, carrierID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
	DeletePending(ctx context.Context, id string) error
}

package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// IRatingRepository abstracts DynamoDB reads for Rating. Inserts go
// through ILifecycleRepository.CreateRating so the carrier aggregate
// moves in the same transaction.
type IRatingRepository interface {
	GetByRequestID(ctx context.Context, requestID string) (entities.Rating, error)
	ListByCarrierID(ctx context.Context, carrierID string) ([]entities.Rating, error)
}

package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// IFreightRepository abstracts DynamoDB persistence for FreightRequest.
//
// Reads return a zero-value entity (ID == "") when nothing matches; use
// cases turn that into their not-found sentinel. UpdateStatus is a
// conditional single-row write: it applies only while the stored status
// equals from, and returns a zero-value entity when the condition fails.
type IFreightRepository interface {
	Create(ctx context.Context, f entities.FreightRequest) (entities.FreightRequest, error)
	GetByID(ctx context.Context, id string) (entities.FreightRequest, error)
	ListByStatus(ctx context.Context, status entities.FreightStatus) ([]entities.FreightRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.FreightRequest, error)
	Update(ctx context.Context, f entities.FreightRequest) (entities.FreightRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.FreightStatus) (entities.FreightRequest, error)
	SetPhotoRef(ctx context.Context, id, ref string) (entities.FreightRequest, error)
	SoftDelete(ctx context.Context, id string) error
}

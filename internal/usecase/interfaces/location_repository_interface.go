package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// ILocationRepository abstracts DynamoDB persistence for Location.
type ILocationRepository interface {
	Create(ctx context.Context, l entities.Location) (entities.Location, error)
	GetByID(ctx context.Context, id string) (entities.Location, error)
	List(ctx context.Context) ([]entities.Location, error)
}

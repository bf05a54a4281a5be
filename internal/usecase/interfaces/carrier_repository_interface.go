package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// ICarrierRepository abstracts DynamoDB persistence for Carrier. The
// rating aggregate fields are written only by
// ILifecycleRepository.CreateRating; everything else treats them as
// read-only.
type ICarrierRepository interface {
	Create(ctx context.Context, c entities.Carrier) (entities.Carrier, error)
	GetByID(ctx context.Context, id string) (entities.Carrier, error)
	GetByUserID(ctx context.Context, userID string) (entities.Carrier, error)
	List(ctx context.Context) ([]entities.Carrier, error)
	UpdateZones(ctx context.Context, id string, zoneIDs []string) (entities.Carrier, error)
}

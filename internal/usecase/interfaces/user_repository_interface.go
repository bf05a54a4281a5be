package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. GetByAuthUID
// is the handoff from the auth collaborator: the verified external
// subject id resolves to at most one profile.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByAuthUID(ctx context.Context, authUID string) (entities.User, error)
}

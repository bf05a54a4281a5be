package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCarrierInput = errors.New("invalid carrier payload")
	ErrCarrierExists       = errors.New("user already has a carrier profile")
)

// CreateCarrierInput carries a new carrier profile for the calling user.
type CreateCarrierInput struct {
	Description  string
	VehicleType  string
	VehiclePlate string
	VehicleModel string
	CapacityKg   int
	ZoneIDs      []string
}

type ICarrierUseCase interface {
	Create(ctx context.Context, authUID string, in CreateCarrierInput) (entities.Carrier, error)
	GetByID(ctx context.Context, id string) (entities.Carrier, error)
	List(ctx context.Context) ([]entities.Carrier, error)
	UpdateZones(ctx context.Context, authUID string, zoneIDs []string) (entities.Carrier, error)
}

type CarrierUseCase struct {
	carriers interfaces.ICarrierRepository
	users    interfaces.IUserRepository
}

var _ ICarrierUseCase = (*CarrierUseCase)(nil)

func NewCarrierUseCase(carriers interfaces.ICarrierRepository, users interfaces.IUserRepository) *CarrierUseCase {
	return &CarrierUseCase{carriers: carriers, users: users}
}

func (u *CarrierUseCase) Create(ctx context.Context, authUID string, in CreateCarrierInput) (entities.Carrier, error) {
	user, err := u.users.GetByAuthUID(ctx, strings.TrimSpace(authUID))
	if err != nil {
		return entities.Carrier{}, err
	}
	if user.ID == "" {
		return entities.Carrier{}, ErrUserNotFound
	}

	if strings.TrimSpace(in.VehicleType) == "" || strings.TrimSpace(in.VehiclePlate) == "" {
		return entities.Carrier{}, ErrInvalidCarrierInput
	}
	if in.CapacityKg < 0 {
		return entities.Carrier{}, ErrInvalidCarrierInput
	}

	// One carrier profile per user.
	if existing, err := u.carriers.GetByUserID(ctx, user.ID); err != nil {
		return entities.Carrier{}, err
	} else if existing.ID != "" {
		return entities.Carrier{}, ErrCarrierExists
	}

	c := entities.Carrier{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Description:  strings.TrimSpace(in.Description),
		VehicleType:  strings.TrimSpace(in.VehicleType),
		VehiclePlate: strings.TrimSpace(in.VehiclePlate),
		VehicleModel: strings.TrimSpace(in.VehicleModel),
		CapacityKg:   in.CapacityKg,
		ZoneIDs:      dedupeZones(in.ZoneIDs),
		CreatedAt:    time.Now().UTC(),
	}
	return u.carriers.Create(ctx, c)
}

func (u *CarrierUseCase) GetByID(ctx context.Context, id string) (entities.Carrier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Carrier{}, ErrInvalidCarrierInput
	}
	c, err := u.carriers.GetByID(ctx, id)
	if err != nil {
		return entities.Carrier{}, err
	}
	if c.ID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	return c, nil
}

func (u *CarrierUseCase) List(ctx context.Context) ([]entities.Carrier, error) {
	return u.carriers.List(ctx)
}

func (u *CarrierUseCase) UpdateZones(ctx context.Context, authUID string, zoneIDs []string) (entities.Carrier, error) {
	user, err := u.users.GetByAuthUID(ctx, strings.TrimSpace(authUID))
	if err != nil {
		return entities.Carrier{}, err
	}
	if user.ID == "" {
		return entities.Carrier{}, ErrUserNotFound
	}
	c, err := u.carriers.GetByUserID(ctx, user.ID)
	if err != nil {
		return entities.Carrier{}, err
	}
	if c.ID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	return u.carriers.UpdateZones(ctx, c.ID, dedupeZones(zoneIDs))
}

func dedupeZones(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, z := range in {
		z = strings.TrimSpace(z)
		if z == "" {
			continue
		}
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	return out
}

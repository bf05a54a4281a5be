package usecase

import (
	"context"
	"errors"
	"strings"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound     = errors.New("location not found")
	ErrInvalidLocationInput = errors.New("invalid location payload")
)

type ILocationUseCase interface {
	Create(ctx context.Context, name, province, postalCode string) (entities.Location, error)
	GetByID(ctx context.Context, id string) (entities.Location, error)
	List(ctx context.Context) ([]entities.Location, error)
}

type LocationUseCase struct {
	locations interfaces.ILocationRepository
}

var _ ILocationUseCase = (*LocationUseCase)(nil)

func NewLocationUseCase(locations interfaces.ILocationRepository) *LocationUseCase {
	return &LocationUseCase{locations: locations}
}

func (u *LocationUseCase) Create(ctx context.Context, name, province, postalCode string) (entities.Location, error) {
	name = strings.TrimSpace(name)
	province = strings.TrimSpace(province)
	if name == "" || province == "" {
		return entities.Location{}, ErrInvalidLocationInput
	}
	l := entities.Location{
		ID:         uuid.NewString(),
		Name:       name,
		Province:   province,
		PostalCode: strings.TrimSpace(postalCode),
	}
	return u.locations.Create(ctx, l)
}

func (u *LocationUseCase) GetByID(ctx context.Context, id string) (entities.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Location{}, ErrInvalidLocationInput
	}
	l, err := u.locations.GetByID(ctx, id)
	if err != nil {
		return entities.Location{}, err
	}
	if l.ID == "" {
		return entities.Location{}, ErrLocationNotFound
	}
	return l, nil
}

func (u *LocationUseCase) List(ctx context.Context) ([]entities.Location, error) {
	return u.locations.List(ctx)
}

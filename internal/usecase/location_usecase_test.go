package usecase

import (
	"context"
	"errors"
	"testing"

	"freightmarket/internal/domain/entities"
	mock_interfaces "freightmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLocationUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewLocationUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "Buenos Aires", "1884")
		if !errors.Is(err, ErrInvalidLocationInput) {
			t.Fatalf("expected ErrInvalidLocationInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locations := mock_interfaces.NewMockILocationRepository(ctrl)
		uc := NewLocationUseCase(locations)

		locations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Location{})).DoAndReturn(
			func(_ context.Context, l entities.Location) (entities.Location, error) {
				if l.ID == "" || l.Name != "Berazategui" || l.Province != "Buenos Aires" {
					t.Fatalf("unexpected location: %+v", l)
				}
				return l, nil
			},
		)

		l, err := uc.Create(context.Background(), " Berazategui ", "Buenos Aires", " 1884 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.PostalCode != "1884" {
			t.Fatalf("expected trimmed postal code, got %q", l.PostalCode)
		}
	})
}

func TestLocationUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	locations := mock_interfaces.NewMockILocationRepository(ctrl)
	uc := NewLocationUseCase(locations)

	locations.EXPECT().GetByID(gomock.Any(), "z-404").Return(entities.Location{}, nil)

	if _, err := uc.GetByID(context.Background(), "z-404"); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

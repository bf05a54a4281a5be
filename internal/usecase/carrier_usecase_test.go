package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"freightmarket/internal/domain/entities"
	mock_interfaces "freightmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCarrierUseCase_Create(t *testing.T) {
	t.Run("missing vehicle data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCarrierUseCase(carriers, users)

		users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Create(context.Background(), "uid-1", CreateCarrierInput{VehicleType: "van"})
		if !errors.Is(err, ErrInvalidCarrierInput) {
			t.Fatalf("expected ErrInvalidCarrierInput, got %v", err)
		}
	})

	t.Run("one profile per user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCarrierUseCase(carriers, users)

		users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "u-1"}, nil)
		carriers.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Carrier{ID: "c-existing"}, nil)

		_, err := uc.Create(context.Background(), "uid-1", CreateCarrierInput{VehicleType: "van", VehiclePlate: "AB123CD"})
		if !errors.Is(err, ErrCarrierExists) {
			t.Fatalf("expected ErrCarrierExists, got %v", err)
		}
	})

	t.Run("success dedupes zones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCarrierUseCase(carriers, users)

		users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "u-1"}, nil)
		carriers.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Carrier{}, nil)
		carriers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Carrier{})).DoAndReturn(
			func(_ context.Context, c entities.Carrier) (entities.Carrier, error) {
				if c.ID == "" || c.UserID != "u-1" || c.VehiclePlate != "AB123CD" {
					t.Fatalf("unexpected carrier: %+v", c)
				}
				if !reflect.DeepEqual(c.ZoneIDs, []string{"z-1", "z-2"}) {
					t.Fatalf("expected deduped zones, got %v", c.ZoneIDs)
				}
				if c.RatingSum != 0 || c.RatingCount != 0 {
					t.Fatalf("new carrier must start unrated: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.Create(context.Background(), "uid-1", CreateCarrierInput{
			VehicleType:  "van",
			VehiclePlate: " AB123CD ",
			ZoneIDs:      []string{"z-1", " z-2 ", "z-1", "  "},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCarrierUseCase_UpdateZones(t *testing.T) {
	t.Run("no carrier profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCarrierUseCase(carriers, users)

		users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "u-1"}, nil)
		carriers.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Carrier{}, nil)

		_, err := uc.UpdateZones(context.Background(), "uid-1", []string{"z-1"})
		if !errors.Is(err, ErrCarrierNotFound) {
			t.Fatalf("expected ErrCarrierNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCarrierUseCase(carriers, users)

		users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "u-1"}, nil)
		carriers.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Carrier{ID: "c-1"}, nil)
		carriers.EXPECT().UpdateZones(gomock.Any(), "c-1", []string{"z-9"}).
			Return(entities.Carrier{ID: "c-1", ZoneIDs: []string{"z-9"}}, nil)

		c, err := uc.UpdateZones(context.Background(), "uid-1", []string{"z-9", "z-9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(c.ZoneIDs, []string{"z-9"}) {
			t.Fatalf("unexpected zones: %v", c.ZoneIDs)
		}
	})
}

func TestCarrierUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
	uc := NewCarrierUseCase(carriers, nil)

	carriers.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Carrier{}, nil)

	if _, err := uc.GetByID(context.Background(), "c-404"); !errors.Is(err, ErrCarrierNotFound) {
		t.Fatalf("expected ErrCarrierNotFound, got %v", err)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freightmarket/internal/adapter/http/handlers/mocks"
	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCarrierHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICarrierUseCase(ctrl)
		h := NewCarrierHandler(uc)

		r := gin.New()
		r.POST("/v1/carriers", withAuthUID("uid-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Carrier{}, usecase.ErrCarrierExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/carriers", bytes.NewBufferString(
			`{"vehicle_type":"van","vehicle_plate":"AB123CD","zone_ids":["z-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "CARRIER_EXISTS" {
			t.Fatalf("expected CARRIER_EXISTS, got %s", code)
		}
	})

	t.Run("success exposes the derived average", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICarrierUseCase(ctrl)
		h := NewCarrierHandler(uc)

		r := gin.New()
		r.POST("/v1/carriers", withAuthUID("uid-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Carrier{ID: "c-1", UserID: "u-1", VehicleType: "van", VehiclePlate: "AB123CD", RatingSum: 19, RatingCount: 5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/carriers", bytes.NewBufferString(
			`{"vehicle_type":"van","vehicle_plate":"AB123CD","zone_ids":["z-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["average_rating"] != 3.8 {
			t.Fatalf("expected average 3.8, got %v", body["average_rating"])
		}
	})
}

func TestCarrierHandler_UpdateZones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing zone list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICarrierUseCase(ctrl)
		h := NewCarrierHandler(uc)

		r := gin.New()
		r.PUT("/v1/carriers/zones", withAuthUID("uid-1"), h.UpdateZones)

		req := httptest.NewRequest(http.MethodPut, "/v1/carriers/zones", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICarrierUseCase(ctrl)
		h := NewCarrierHandler(uc)

		r := gin.New()
		r.PUT("/v1/carriers/zones", withAuthUID("uid-1"), h.UpdateZones)

		uc.EXPECT().UpdateZones(gomock.Any(), "uid-1", []string{"z-1", "z-2"}).
			Return(entities.Carrier{ID: "c-1", ZoneIDs: []string{"z-1", "z-2"}}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/carriers/zones", bytes.NewBufferString(
			`{"zone_ids":["z-1","z-2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCarrierHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICarrierUseCase(ctrl)
	h := NewCarrierHandler(uc)

	r := gin.New()
	r.GET("/v1/carriers/:id", h.GetByID)

	uc.EXPECT().GetByID(gomock.Any(), "c-404").
		Return(entities.Carrier{}, usecase.ErrCarrierNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/carriers/c-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

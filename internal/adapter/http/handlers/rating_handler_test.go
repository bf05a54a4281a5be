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

func TestRatingHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", withAuthUID("uid-1"), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("score out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", withAuthUID("uid-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), "uid-1", usecase.CreateRatingInput{RequestID: "f-1", Score: 9}).
			Return(entities.Rating{}, usecase.ErrInvalidRatingScore)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(
			`{"request_id":"f-1","score":9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_SCORE" {
			t.Fatalf("expected INVALID_SCORE, got %s", code)
		}
	})

	t.Run("already rated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", withAuthUID("uid-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Rating{}, usecase.ErrRatingExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(
			`{"request_id":"f-1","score":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "RATING_EXISTS" {
			t.Fatalf("expected RATING_EXISTS, got %s", code)
		}
	})

	t.Run("trip not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", withAuthUID("uid-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Rating{}, usecase.ErrFreightNotCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(
			`{"request_id":"f-1","score":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "ILLEGAL_STATE" {
			t.Fatalf("expected ILLEGAL_STATE, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", withAuthUID("uid-1"), h.Create)

		uc.EXPECT().Create(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Rating{ID: "r-1", RequestID: "f-1", CarrierID: "c-1", Score: 5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(
			`{"request_id":"f-1","score":5,"comment":"great"}`))
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
		if body["id"] != "r-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestRatingHandler_GetByFreight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRatingUseCase(ctrl)
	h := NewRatingHandler(uc)

	r := gin.New()
	r.GET("/v1/freights/:id/rating", h.GetByFreight)

	uc.EXPECT().GetByFreight(gomock.Any(), "f-1").
		Return(entities.Rating{}, usecase.ErrRatingNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/freights/f-1/rating", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRatingHandler_ListByCarrier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRatingUseCase(ctrl)
	h := NewRatingHandler(uc)

	r := gin.New()
	r.GET("/v1/carriers/:id/ratings", h.ListByCarrier)

	uc.EXPECT().ListByCarrier(gomock.Any(), "c-1").Return([]entities.Rating{
		{ID: "r-1", CarrierID: "c-1", Score: 5},
		{ID: "r-2", CarrierID: "c-1", Score: 4},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/carriers/c-1/ratings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(body))
	}
}

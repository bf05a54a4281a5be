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

func TestQuoteHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", withAuthUID("uid-1"), h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate pending quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", withAuthUID("uid-1"), h.Submit)

		uc.EXPECT().Submit(gomock.Any(), "uid-1", usecase.SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 900}).
			Return(entities.Quote{}, usecase.ErrDuplicatePendingQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(
			`{"request_id":"f-1","estimated_price":900}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "DUPLICATE_QUOTE" {
			t.Fatalf("expected DUPLICATE_QUOTE, got %s", code)
		}
	})

	t.Run("request no longer open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", withAuthUID("uid-1"), h.Submit)

		uc.EXPECT().Submit(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrIllegalState)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(
			`{"request_id":"f-1","estimated_price":900}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", withAuthUID("uid-1"), h.Submit)

		uc.EXPECT().Submit(gomock.Any(), "uid-1", gomock.Any()).
			Return(entities.Quote{ID: "q-1", RequestID: "f-1", CarrierID: "c-1", EstimatedPrice: 900, Status: entities.QuoteStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(
			`{"request_id":"f-1","estimated_price":900,"comment":"same day"}`))
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
		if body["id"] != "q-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_ListByFreight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/freights/:id/quotes", h.ListByFreight)

	uc.EXPECT().ListByFreight(gomock.Any(), "f-1", "pending").Return([]entities.Quote{
		{ID: "q-1", Status: entities.QuoteStatusPending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/freights/f-1/quotes?status=pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "q-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestQuoteHandler_ListByFreight_DefaultsToPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/freights/:id/quotes", h.ListByFreight)

	uc.EXPECT().ListByFreight(gomock.Any(), "f-1", "pending").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/freights/f-1/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuoteHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lost the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/accept", withAuthUID("uid-1"), h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "uid-1", "q-1").
			Return(entities.Quote{}, usecase.ErrRequestAlreadyAssigned)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "ALREADY_ASSIGNED" {
			t.Fatalf("expected ALREADY_ASSIGNED, got %s", code)
		}
	})

	t.Run("not the request owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/accept", withAuthUID("uid-x"), h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "uid-x", "q-1").
			Return(entities.Quote{}, usecase.ErrNotRequestOwner)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/accept", withAuthUID("uid-1"), h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "uid-1", "q-1").
			Return(entities.Quote{ID: "q-1", RequestID: "f-1", Status: entities.QuoteStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["status"] != "accepted" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_Withdraw(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", withAuthUID("uid-1"), h.Withdraw)

		uc.EXPECT().Withdraw(gomock.Any(), "uid-1", "q-1").Return(usecase.ErrQuoteNotPending)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", withAuthUID("uid-1"), h.Withdraw)

		uc.EXPECT().Withdraw(gomock.Any(), "uid-1", "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

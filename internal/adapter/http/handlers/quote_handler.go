package handlers

import (
	"errors"
	"net/http"

	request "freightmarket/internal/adapter/http/dto/request"
	response "freightmarket/internal/adapter/http/dto/response"
	"freightmarket/internal/adapter/http/middleware"
	"freightmarket/internal/usecase"
	"freightmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for bidding.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.QuoteSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Submit(c.Request.Context(), middleware.GetAuthUID(c), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListByFreight returns the quotes on a request. Without a ?status= the
// listing covers the open bids; an explicitly empty ?status= returns all.
func (h *QuoteHandler) ListByFreight(c *gin.Context) {
	qs, err := h.usecase.ListByFreight(c.Request.Context(), c.Param("id"), c.DefaultQuery("status", "pending"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

func (h *QuoteHandler) Accept(c *gin.Context) {
	q, err := h.usecase.Accept(c.Request.Context(), middleware.GetAuthUID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	q, err := h.usecase.Reject(c.Request.Context(), middleware.GetAuthUID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) Withdraw(c *gin.Context) {
	if err := h.usecase.Withdraw(c.Request.Context(), middleware.GetAuthUID(c), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarrierNotFound):
		return pkg.NewDomainErrorSimple("CARRIER_NOT_FOUND", "Carrier profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreightNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_FOUND", "Freight request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRequestOwner), errors.Is(err, usecase.ErrNotAssignedCarrier):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not act on this quote", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDuplicatePendingQuote):
		return pkg.NewDomainErrorSimple("DUPLICATE_QUOTE", "Carrier already has a pending quote on this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ALREADY_ASSIGNED", "Freight request already has a carrier", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPending), errors.Is(err, usecase.ErrIllegalState):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATE", "Operation not allowed in the current quote status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

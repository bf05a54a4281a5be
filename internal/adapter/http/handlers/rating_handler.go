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

var errInvalidRatingPayload = pkg.NewDomainErrorSimple("INVALID_RATING_INPUT", "Invalid rating payload", http.StatusBadRequest)

// RatingHandler handles HTTP requests for trip ratings.
type RatingHandler struct {
	usecase usecase.IRatingUseCase
}

func NewRatingHandler(uc usecase.IRatingUseCase) *RatingHandler {
	return &RatingHandler{usecase: uc}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var payload request.RatingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatingPayload.HTTPStatus, errInvalidRatingPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.Create(c.Request.Context(), middleware.GetAuthUID(c), payload.ToInput())
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRating(r))
}

func (h *RatingHandler) GetByFreight(c *gin.Context) {
	r, err := h.usecase.GetByFreight(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRating(r))
}

func (h *RatingHandler) ListByCarrier(c *gin.Context) {
	rs, err := h.usecase.ListByCarrier(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRatings(rs))
}

func mapRatingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRatingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRatingScore):
		return pkg.NewDomainErrorSimple("INVALID_SCORE", "Score must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreightNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_FOUND", "Freight request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRatingNotFound):
		return pkg.NewDomainErrorSimple("RATING_NOT_FOUND", "Rating not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRequestOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the request owner may rate the trip", http.StatusForbidden)
	case errors.Is(err, usecase.ErrFreightNotCompleted):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATE", "Trip is not completed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrRatingExists):
		return pkg.NewDomainErrorSimple("RATING_EXISTS", "This trip has already been rated", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

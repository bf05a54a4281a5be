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

var errInvalidCarrierPayload = pkg.NewDomainErrorSimple("INVALID_CARRIER_INPUT", "Invalid carrier payload", http.StatusBadRequest)

// CarrierHandler handles HTTP requests for carrier profiles.
type CarrierHandler struct {
	usecase usecase.ICarrierUseCase
}

func NewCarrierHandler(uc usecase.ICarrierUseCase) *CarrierHandler {
	return &CarrierHandler{usecase: uc}
}

func (h *CarrierHandler) Create(c *gin.Context) {
	var payload request.CarrierCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCarrierPayload.HTTPStatus, errInvalidCarrierPayload.ToHTTPError())
		return
	}

	carrier, err := h.usecase.Create(c.Request.Context(), middleware.GetAuthUID(c), payload.ToInput())
	if err != nil {
		appErr := mapCarrierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCarrier(carrier))
}

func (h *CarrierHandler) GetByID(c *gin.Context) {
	carrier, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCarrierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCarrier(carrier))
}

func (h *CarrierHandler) List(c *gin.Context) {
	carriers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCarrierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCarriers(carriers))
}

// UpdateZones replaces the calling carrier's coverage zones.
func (h *CarrierHandler) UpdateZones(c *gin.Context) {
	var payload request.CarrierZonesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCarrierPayload.HTTPStatus, errInvalidCarrierPayload.ToHTTPError())
		return
	}

	carrier, err := h.usecase.UpdateZones(c.Request.Context(), middleware.GetAuthUID(c), payload.ZoneIDs)
	if err != nil {
		appErr := mapCarrierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCarrier(carrier))
}

func mapCarrierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCarrierInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarrierNotFound):
		return pkg.NewDomainErrorSimple("CARRIER_NOT_FOUND", "Carrier profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarrierExists):
		return pkg.NewDomainErrorSimple("CARRIER_EXISTS", "User already has a carrier profile", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

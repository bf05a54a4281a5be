package handlers

import (
	"errors"
	"net/http"

	request "freightmarket/internal/adapter/http/dto/request"
	response "freightmarket/internal/adapter/http/dto/response"
	"freightmarket/internal/usecase"
	"freightmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLocationPayload = pkg.NewDomainErrorSimple("INVALID_LOCATION_INPUT", "Invalid location payload", http.StatusBadRequest)

// LocationHandler handles HTTP requests for the coverage zone catalog.
type LocationHandler struct {
	usecase usecase.ILocationUseCase
}

func NewLocationHandler(uc usecase.ILocationUseCase) *LocationHandler {
	return &LocationHandler{usecase: uc}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var payload request.LocationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLocationPayload.HTTPStatus, errInvalidLocationPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Province, payload.PostalCode)
	if err != nil {
		appErr := mapLocationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLocation(l))
}

func (h *LocationHandler) GetByID(c *gin.Context) {
	l, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLocationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLocation(l))
}

func (h *LocationHandler) List(c *gin.Context) {
	ls, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLocationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLocations(ls))
}

func mapLocationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLocationInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLocationNotFound):
		return pkg.NewDomainErrorSimple("LOCATION_NOT_FOUND", "Location not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "freightmarket/internal/adapter/http/dto/request"
	response "freightmarket/internal/adapter/http/dto/response"
	"freightmarket/internal/adapter/http/middleware"
	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase"
	"freightmarket/internal/usecase/interfaces"
	"freightmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFreightPayload = pkg.NewDomainErrorSimple("INVALID_FREIGHT_INPUT", "Invalid freight request payload", http.StatusBadRequest)

// FreightHandler handles HTTP requests for freight requests and their
// trip lifecycle.
type FreightHandler struct {
	usecase usecase.IFreightUseCase
}

func NewFreightHandler(uc usecase.IFreightUseCase) *FreightHandler {
	return &FreightHandler{usecase: uc}
}

func (h *FreightHandler) Create(c *gin.Context) {
	var payload request.FreightCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	f, err := h.usecase.Create(c.Request.Context(), middleware.GetAuthUID(c), in)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFreight(f))
}

func (h *FreightHandler) GetByID(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// List returns freight requests, optionally filtered by ?status=.
func (h *FreightHandler) List(c *gin.Context) {
	fs, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(fs))
}

func (h *FreightHandler) ListMine(c *gin.Context) {
	h.listForCaller(c, h.usecase.ListMine)
}

// ListAvailable returns open requests inside the calling carrier's zones.
func (h *FreightHandler) ListAvailable(c *gin.Context) {
	h.listForCaller(c, h.usecase.ListAvailable)
}

func (h *FreightHandler) ListAssigned(c *gin.Context) {
	h.listForCaller(c, h.usecase.ListAssigned)
}

func (h *FreightHandler) ListHistory(c *gin.Context) {
	h.listForCaller(c, h.usecase.ListHistory)
}

func (h *FreightHandler) listForCaller(
	c *gin.Context,
	lister func(ctx context.Context, authUID string) ([]entities.FreightRequest, error),
) {
	fs, err := lister(c.Request.Context(), middleware.GetAuthUID(c))
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(fs))
}

func (h *FreightHandler) Update(c *gin.Context) {
	var payload request.FreightUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	upd, err := payload.ToUpdate()
	if err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	f, err := h.usecase.Update(c.Request.Context(), middleware.GetAuthUID(c), c.Param("id"), upd)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

func (h *FreightHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.GetAuthUID(c), c.Param("id")); err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FreightHandler) StartTrip(c *gin.Context) {
	h.transition(c, h.usecase.StartTrip)
}

func (h *FreightHandler) CompleteTrip(c *gin.Context) {
	h.transition(c, h.usecase.CompleteTrip)
}

func (h *FreightHandler) CancelByClient(c *gin.Context) {
	h.transition(c, h.usecase.CancelByClient)
}

func (h *FreightHandler) CancelByCarrier(c *gin.Context) {
	h.transition(c, h.usecase.CancelByCarrier)
}

func (h *FreightHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, authUID, id string) (entities.FreightRequest, error),
) {
	f, err := apply(c.Request.Context(), middleware.GetAuthUID(c), c.Param("id"))
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// UploadPhoto attaches (or replaces) the cargo photo, sent as the
// multipart field "photo".
func (h *FreightHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	f, err := h.usecase.AttachPhoto(
		c.Request.Context(),
		middleware.GetAuthUID(c),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// GetPhoto streams the stored cargo photo back to the caller.
func (h *FreightHandler) GetPhoto(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body, contentType, err := h.usecase.OpenPhoto(c.Request.Context(), f.PhotoRef)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, body)
}

func mapFreightError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFreightInput), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhoto):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO", "Photo type not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarrierNotFound):
		return pkg.NewDomainErrorSimple("CARRIER_NOT_FOUND", "Carrier profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreightNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_FOUND", "Freight request not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrPhotoNotFound):
		return pkg.NewDomainErrorSimple("PHOTO_NOT_FOUND", "Photo not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRequestOwner), errors.Is(err, usecase.ErrNotAssignedCarrier):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not act on this freight request", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ALREADY_ASSIGNED", "Freight request already has a carrier", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalState):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATE", "Operation not allowed in the current request status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

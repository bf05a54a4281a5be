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

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)

// ReportHandler handles HTTP requests for support tickets.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var payload request.ReportCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.Create(c.Request.Context(), middleware.GetAuthUID(c), payload.ToInput())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromReport(r))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

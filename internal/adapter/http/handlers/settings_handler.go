package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/dto/request"
	response "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/dto/response"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/pkg"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// SettingsHandler handles HTTP requests for company and app settings.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetCompanySettings(c *gin.Context) {
	settings, err := h.usecase.GetCompany(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompanySettings(settings))
}

func (h *SettingsHandler) UpdateCompanySettings(c *gin.Context) {
	var payload request.CompanySettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.UpdateCompany(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompanySettings(settings))
}

func (h *SettingsHandler) GetAppSettings(c *gin.Context) {
	settings, err := h.usecase.GetApp(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppSettings(settings))
}

func (h *SettingsHandler) UpdateAppSettings(c *gin.Context) {
	var payload request.AppSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.UpdateApp(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppSettings(settings))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyName),
		errors.Is(err, usecase.ErrInvalidTaxRate),
		errors.Is(err, money.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

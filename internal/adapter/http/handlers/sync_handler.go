package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/dto/request"
	response "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/dto/response"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/pkg"
)

var (
	errInvalidSyncPayload = pkg.NewDomainErrorSimple("INVALID_SYNC_INPUT", "Invalid sync payload", http.StatusBadRequest)
)

// ISessionManager mutates the active auth session. The sync handler drives
// it before asking the coordinator to react to the auth change.
type ISessionManager interface {
	Login(userID string)
	Logout()
}

// SyncHandler handles HTTP requests for the sync surface.

type SyncHandler struct {
	coordinator usecase.ISyncCoordinator
	session     ISessionManager
}

func NewSyncHandler(coordinator usecase.ISyncCoordinator, session ISessionManager) *SyncHandler {
	return &SyncHandler{coordinator: coordinator, session: session}
}

// Login starts a session and runs the login sync decision.
func (h *SyncHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSyncPayload.HTTPStatus, errInvalidSyncPayload.ToHTTPError())
		return
	}

	h.session.Login(payload.UserID)

	decision, err := h.coordinator.SyncOnLogin(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SyncLoginResponse{Decision: string(decision)})
}

// Logout ends the session. Local data stays on disk.
func (h *SyncHandler) Logout(c *gin.Context) {
	h.coordinator.Logout()
	h.session.Logout()

	c.Status(http.StatusNoContent)
}

// Flush retries every queued mutation now.
func (h *SyncHandler) Flush(c *gin.Context) {
	if err := h.coordinator.Flush(c.Request.Context()); err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSyncStatus(h.coordinator.Status(c.Request.Context())))
}

func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSyncStatus(h.coordinator.Status(c.Request.Context())))
}

func (h *SyncHandler) ListErrors(c *gin.Context) {
	status := h.coordinator.Status(c.Request.Context())
	c.JSON(http.StatusOK, response.FromSyncErrors(status.Errors))
}

func (h *SyncHandler) ClearErrors(c *gin.Context) {
	h.coordinator.ClearErrors()
	c.Status(http.StatusNoContent)
}

func (h *SyncHandler) DismissError(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.coordinator.DismissError(index); err != nil {
		appErr := pkg.NewDomainErrorSimple("SYNC_ERROR_NOT_FOUND", "Sync error not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "No authenticated user", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Sync failed", err, http.StatusBadGateway)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/dto/response"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/pkg"
)

// ActivityHandler serves the activity log.

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivities(activities))
}

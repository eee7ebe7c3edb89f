package handlers

import (
	"errors"
	"io"
	"net/http"

	"dad-circles-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchingHandler exposes operator-triggered matching passes
type MatchingHandler struct {
	service service.MatchingServiceInterface
}

// NewMatchingHandler creates a new matching handler
func NewMatchingHandler(service service.MatchingServiceInterface) *MatchingHandler {
	return &MatchingHandler{service: service}
}

// RunPass triggers a matching pass
// @Summary Run matching pass
// @Description Form pending groups from the unmatched pool, optionally for one city and state. A dry run reports the groups without writing them.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.RunPassRequest false "Pass options"
// @Success 200 {object} service.PassSummary "Pass summary"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "A matching pass is already running"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/matching/run [post]
func (h *MatchingHandler) RunPass(c *gin.Context) {
	var req service.RunPassRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.service.RunPass(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

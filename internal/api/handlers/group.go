package handlers

import (
	"net/http"
	"strconv"

	"dad-circles-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// ListGroups lists groups
// @Summary List groups
// @Description List groups newest first, optionally filtered by status
// @Tags groups
// @Accept json
// @Produce json
// @Param status query string false "Group status" Enums(pending, active, inactive)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.GroupListResponse "Successfully retrieved groups"
// @Failure 400 {object} ErrorResponse "Invalid status or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page_size"})
		return
	}

	groups, err := h.service.ListGroups(c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves a group by ID
// @Summary Get group by ID
// @Description Get a specific group by its UUID
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseGroupID(c)
	if !ok {
		return
	}

	group, err := h.service.GetGroupByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ApproveGroup activates a pending group and sends the introduction
// @Summary Approve group
// @Description Activate a pending group and email every member an introduction. Partial delivery still activates the group.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.ApproveResult "Group approved"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Group is not pending"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/groups/{id}/approve [post]
func (h *GroupHandler) ApproveGroup(c *gin.Context) {
	id, ok := parseGroupID(c)
	if !ok {
		return
	}

	result, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteGroup dissolves a pending group
// @Summary Delete pending group
// @Description Delete a pending group and return its members to the unmatched pool. Active groups cannot be deleted.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.DeleteResult "Group deleted"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Group is active"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseGroupID(c)
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseGroupID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return uuid.Nil, false
	}
	return id, true
}

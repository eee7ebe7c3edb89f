package handlers

import (
	"net/http"

	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for members
type MemberHandler struct {
	service service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// CreateMember records an onboarded member
// @Summary Create a new member
// @Description Record a member captured by onboarding. New members are eligible for matching unless eligible is false.
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Member with this email already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.service.CreateMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Description Get a specific member, including the derived life stage and group assignment
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid member ID"})
		return
	}

	member, err := h.service.GetMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListUnmatched lists the unmatched pool
// @Summary List unmatched members
// @Description List eligible members without a group, optionally for one city and state
// @Tags members
// @Accept json
// @Produce json
// @Param city query string false "City (requires state)"
// @Param state query string false "State (requires city)"
// @Success 200 {array} service.MemberResponse "Unmatched members"
// @Failure 400 {object} ErrorResponse "Only one of city and state given"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/unmatched [get]
func (h *MemberHandler) ListUnmatched(c *gin.Context) {
	var filter *repository.LocationFilter
	city, state := c.Query("city"), c.Query("state")
	if city != "" || state != "" {
		filter = &repository.LocationFilter{City: city, State: state}
	}

	members, err := h.service.ListUnmatched(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

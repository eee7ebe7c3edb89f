package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dad-circles-backend/internal/database/models"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/matching"
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/sanitize"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles intake and lookup of members
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock overrides the clock used for life-stage derivation
func (s *MemberService) WithClock(now func() time.Time) *MemberService {
	s.now = now
	return s
}

// ChildRequest describes one child on an intake request
type ChildRequest struct {
	Name       string  `json:"name" validate:"max=100"`
	BirthYear  int     `json:"birth_year" validate:"required,min=1900,max=2200" example:"2026"`
	BirthMonth *int    `json:"birth_month" validate:"omitempty,min=1,max=12" example:"3"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=male female other" example:"male"`
	Type       *string `json:"type" validate:"omitempty,oneof=expecting existing" example:"existing"`
}

// CreateMemberRequest represents the data captured by onboarding for one member
type CreateMemberRequest struct {
	Email     string          `json:"email" validate:"required,email,max=255"`
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"max=100"`
	Postcode  string          `json:"postcode" validate:"max=20"`
	City      string          `json:"city" validate:"required,max=100"`
	State     string          `json:"state" validate:"required,max=50"`
	Children  []ChildRequest  `json:"children" validate:"required,min=1,dive"`
	Eligible  *bool           `json:"eligible" example:"true" default:"true"` // Optional: defaults to true
	Metadata  json.RawMessage `json:"metadata" swaggertype:"object"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID        uuid.UUID         `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Postcode  string            `json:"postcode"`
	City      string            `json:"city"`
	State     string            `json:"state"`
	Children  []models.Child    `json:"children"`
	LifeStage *models.LifeStage `json:"life_stage,omitempty"`
	Eligible  bool              `json:"eligible"`
	GroupID   *uuid.UUID        `json:"group_id,omitempty"`
	MatchedAt *time.Time        `json:"matched_at,omitempty"`
	Metadata  json.RawMessage   `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CreateMember validates an onboarding record and stores it
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*MemberResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = sanitize.Text(req.FirstName)
	req.LastName = sanitize.Text(req.LastName)
	req.Postcode = sanitize.Text(req.Postcode)
	req.City = sanitize.Text(req.City)
	req.State = sanitize.Text(req.State)
	for i := range req.Children {
		req.Children[i].Name = sanitize.Text(req.Children[i].Name)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check member email: %w", err)
	}

	eligible := true
	if req.Eligible != nil {
		eligible = *req.Eligible
	}

	children := make(models.Children, len(req.Children))
	for i, c := range req.Children {
		child := models.Child{
			Name:       c.Name,
			BirthYear:  c.BirthYear,
			BirthMonth: c.BirthMonth,
			Gender:     c.Gender,
		}
		if c.Type != nil {
			t := models.ChildType(*c.Type)
			child.Type = &t
		}
		children[i] = child
	}

	member := &models.Member{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Postcode:  req.Postcode,
		Location:  models.Location{City: req.City, State: req.State},
		Children:  children,
		Eligible:  eligible,
		Metadata:  req.Metadata,
	}

	// model tags guard the stored shape as well as the request
	if err := s.validator.Struct(member); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.convertToResponse(member), nil
}

// GetMemberByID retrieves a member by ID
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return s.convertToResponse(member), nil
}

// ListUnmatched returns the current unmatched pool, optionally for one location
func (s *MemberService) ListUnmatched(filter *repository.LocationFilter) ([]MemberResponse, error) {
	if filter != nil && (filter.City == "" || filter.State == "") {
		return nil, apperrors.NewValidationError("location", "city and state must be given together")
	}

	members, err := s.repo.GetUnmatched(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get unmatched members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *s.convertToResponse(&members[i])
	}
	return responses, nil
}

func (s *MemberService) convertToResponse(member *models.Member) *MemberResponse {
	resp := &MemberResponse{
		ID:        member.ID,
		Email:     member.Email,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		Postcode:  member.Postcode,
		City:      member.Location.City,
		State:     member.Location.State,
		Children:  member.Children,
		Eligible:  member.Eligible,
		GroupID:   member.GroupID,
		MatchedAt: member.MatchedAt,
		Metadata:  member.Metadata,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
	if stage, ok := matching.ClassifyMember(member, s.now()); ok {
		resp.LifeStage = &stage
	}
	return resp
}

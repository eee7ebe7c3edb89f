package repository

import (
	"time"

	"dad-circles-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LocationFilter narrows a pool read to one city and state
type LocationFilter struct {
	City  string
	State string
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByIDs(ids []uuid.UUID) ([]models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	GetUnmatched(filter *LocationFilter) ([]models.Member, error)
	GetByGroupID(groupID uuid.UUID) ([]models.Member, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Group, error)
	List(status models.GroupStatus, limit, offset int) ([]models.Group, int64, error)
	CreateWithMembers(group *models.Group, matchedAt time.Time) error
	CompareAndSetStatus(id uuid.UUID, from, to models.GroupStatus) (bool, error)
	MarkIntroduced(id uuid.UUID, emailed []uuid.UUID, sentAt time.Time) error
	DeletePending(id uuid.UUID) (*DeleteOutcome, error)
}

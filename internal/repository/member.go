package repository

import (
	"dad-circles-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIDs retrieves the members that exist among ids; missing ids are simply absent
func (r *MemberRepository) GetByIDs(ids []uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	if len(ids) == 0 {
		return members, nil
	}
	err := r.db.Where("id IN ?", ids).Order("created_at, id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetByEmail retrieves a member by email
func (r *MemberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetUnmatched returns the eligible members without a group, oldest first.
// A nil filter reads the whole pool.
func (r *MemberRepository) GetUnmatched(filter *LocationFilter) ([]models.Member, error) {
	var members []models.Member

	query := r.db.Model(&models.Member{}).Where("eligible = ? AND group_id IS NULL", true)
	if filter != nil {
		query = query.Where("location_city = ? AND location_state = ?", filter.City, filter.State)
	}

	err := query.Order("created_at, id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetByGroupID retrieves the members currently pointing at a group
func (r *MemberRepository) GetByGroupID(groupID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("group_id = ?", groupID).Order("created_at, id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}

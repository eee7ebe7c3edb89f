package repository

import (
	"time"

	"dad-circles-backend/internal/database/models"
	apperrors "dad-circles-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// DeleteOutcome reports what a pending-group deletion did to the member side
type DeleteOutcome struct {
	Group             models.Group
	ReleasedMemberIDs []uuid.UUID
	// MissingMemberIDs were listed on the group but have no member record
	MissingMemberIDs []uuid.UUID
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List retrieves groups newest first, optionally filtered by status, with pagination
func (r *GroupRepository) List(status models.GroupStatus, limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	query := r.db.Model(&models.Group{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC, id").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// CreateWithMembers inserts a pending group and points every listed member at it
// in one transaction. Members are only claimed while group_id IS NULL; if any
// member was claimed elsewhere the whole write is rolled back and
// ErrMemberAlreadyMatched is returned.
func (r *GroupRepository) CreateWithMembers(group *models.Group, matchedAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if group.Status == "" {
			group.Status = models.GroupStatusPending
		}
		if group.EmailedMemberIDs == nil {
			group.EmailedMemberIDs = []uuid.UUID{}
		}
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Member{}).
			Where("id IN ? AND group_id IS NULL", group.MemberIDs).
			Updates(map[string]interface{}{
				"group_id":   group.ID,
				"matched_at": matchedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(group.MemberIDs)) {
			return apperrors.ErrMemberAlreadyMatched
		}
		return nil
	})
}

// CompareAndSetStatus moves a group from one status to another only if it is
// still in the expected status. It reports whether the swap happened.
func (r *GroupRepository) CompareAndSetStatus(id uuid.UUID, from, to models.GroupStatus) (bool, error) {
	res := r.db.Model(&models.Group{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkIntroduced records which members accepted the introduction and when it was sent
func (r *GroupRepository) MarkIntroduced(id uuid.UUID, emailed []uuid.UUID, sentAt time.Time) error {
	if emailed == nil {
		emailed = []uuid.UUID{}
	}
	res := r.db.Model(&models.Group{}).
		Where("id = ?", id).
		Select("EmailedMemberIDs", "IntroductionSentAt").
		Updates(&models.Group{EmailedMemberIDs: emailed, IntroductionSentAt: &sentAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePending releases the members of a pending group and removes the group.
// Returns gorm.ErrRecordNotFound for an unknown id, ErrGroupActive for an active
// group and ErrGroupNotPending for any other non-pending status.
func (r *GroupRepository) DeletePending(id uuid.UUID) (*DeleteOutcome, error) {
	var outcome DeleteOutcome

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&group, "id = ?", id).Error; err != nil {
			return err
		}
		switch group.Status {
		case models.GroupStatusPending:
		case models.GroupStatusActive:
			return apperrors.ErrGroupActive
		default:
			return apperrors.ErrGroupNotPending
		}

		var existing []uuid.UUID
		if len(group.MemberIDs) > 0 {
			if err := tx.Model(&models.Member{}).Where("id IN ?", group.MemberIDs).Pluck("id", &existing).Error; err != nil {
				return err
			}
		}
		outcome.MissingMemberIDs = missingIDs(group.MemberIDs, existing)

		var released []uuid.UUID
		if err := tx.Model(&models.Member{}).Where("group_id = ?", id).Pluck("id", &released).Error; err != nil {
			return err
		}
		if len(released) > 0 {
			err := tx.Model(&models.Member{}).
				Where("group_id = ?", id).
				Updates(map[string]interface{}{"group_id": nil, "matched_at": nil}).Error
			if err != nil {
				return err
			}
		}
		outcome.ReleasedMemberIDs = released

		res := tx.Where("id = ? AND status = ?", id, models.GroupStatusPending).Delete(&models.Group{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return apperrors.ErrGroupNotPending
		}
		outcome.Group = group
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

func missingIDs(listed, existing []uuid.UUID) []uuid.UUID {
	found := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range listed {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

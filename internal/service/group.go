package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dad-circles-backend/internal/database/models"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/logger"
	"dad-circles-backend/internal/matching"
	"dad-circles-backend/internal/notification"
	"dad-circles-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxPageSize = 100

// GroupService drives the group lifecycle: approval with introductions, and deletion
type GroupService struct {
	groupRepo  repository.GroupRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	notifier   IntroductionNotifier
	now        func() time.Time
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo repository.GroupRepositoryInterface, memberRepo repository.MemberRepositoryInterface, notifier IntroductionNotifier) *GroupService {
	return &GroupService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
		now:        time.Now,
	}
}

// WithClock overrides the clock used for timestamps and child summaries
func (s *GroupService) WithClock(now func() time.Time) *GroupService {
	s.now = now
	return s
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	LifeStage          models.LifeStage   `json:"life_stage"`
	Status             models.GroupStatus `json:"status"`
	MemberIDs          []uuid.UUID        `json:"member_ids"`
	MemberEmails       []string           `json:"member_emails"`
	EmailedMemberIDs   []uuid.UUID        `json:"emailed_member_ids"`
	IntroductionSentAt *time.Time         `json:"introduction_sent_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups   []GroupResponse `json:"groups"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ApproveResult reports an approval and its introduction delivery
type ApproveResult struct {
	Group     GroupResponse                  `json:"group"`
	Delivered []uuid.UUID                    `json:"delivered"`
	Failed    []notification.DeliveryFailure `json:"failed"`
}

// DeleteResult reports what a deletion released
type DeleteResult struct {
	GroupID           uuid.UUID   `json:"group_id"`
	ReleasedMemberIDs []uuid.UUID `json:"released_member_ids"`
	MissingMemberIDs  []uuid.UUID `json:"missing_member_ids,omitempty"`
}

// GetGroupByID retrieves a group by ID
func (s *GroupService) GetGroupByID(id uuid.UUID) (*GroupResponse, error) {
	group, err := s.groupRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return toGroupResponse(group), nil
}

// ListGroups retrieves groups with pagination, optionally filtered by status
func (s *GroupService) ListGroups(status string, page, pageSize int) (*GroupListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > maxPageSize {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	st := models.GroupStatus(status)
	if st != "" && !st.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	groups, total, err := s.groupRepo.List(st, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i])
	}
	return &GroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Approve activates a pending group and introduces its members to each other.
// The status swap happens first so two concurrent approvals cannot both notify.
// Partial delivery still activates the group; failures are reported in the result.
func (s *GroupService) Approve(ctx context.Context, id uuid.UUID) (*ApproveResult, error) {
	log := logger.WithContext(ctx).WithField("group_id", id)

	group, err := s.groupRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group.Status != models.GroupStatusPending {
		return nil, apperrors.ErrGroupNotPending
	}

	swapped, err := s.groupRepo.CompareAndSetStatus(id, models.GroupStatusPending, models.GroupStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to activate group: %w", err)
	}
	if !swapped {
		return nil, apperrors.ErrGroupNotPending
	}
	group.Status = models.GroupStatusActive

	intro := s.buildIntroduction(log, group)
	report, err := s.notifier.SendIntroduction(ctx, intro)
	if err != nil {
		log.WithError(err).Error("introduction could not be sent")
		report = &notification.DeliveryReport{}
		for _, r := range intro.Recipients {
			report.Failed = append(report.Failed, notification.DeliveryFailure{MemberID: r.MemberID, Email: r.Email, Error: err.Error()})
		}
	}

	emailed := orderedSubset(group.MemberIDs, report.Delivered)
	sentAt := s.now().UTC()
	if err := s.groupRepo.MarkIntroduced(id, emailed, sentAt); err != nil {
		return nil, fmt.Errorf("group activated but introduction record failed: %w", err)
	}
	group.EmailedMemberIDs = emailed
	group.IntroductionSentAt = &sentAt

	log.WithFields(map[string]interface{}{
		"location":   group.Location.Key(),
		"life_stage": group.LifeStage,
		"delivered":  len(emailed),
		"failed":     len(report.Failed),
	}).Info("group approved")

	return &ApproveResult{
		Group:     *toGroupResponse(group),
		Delivered: emailed,
		Failed:    report.Failed,
	}, nil
}

// Delete dissolves a pending group and returns its members to the unmatched pool
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	log := logger.WithContext(ctx).WithField("group_id", id)

	outcome, err := s.groupRepo.DeletePending(id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrGroupNotFound
		case errors.Is(err, apperrors.ErrGroupActive), errors.Is(err, apperrors.ErrGroupNotPending):
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}

	for _, missing := range outcome.MissingMemberIDs {
		log.WithField("member_id", missing).Warn("group listed a member with no record; skipped")
	}
	log.WithFields(map[string]interface{}{
		"location":   outcome.Group.Location.Key(),
		"life_stage": outcome.Group.LifeStage,
		"released":   len(outcome.ReleasedMemberIDs),
	}).Info("pending group deleted")

	return &DeleteResult{
		GroupID:           id,
		ReleasedMemberIDs: outcome.ReleasedMemberIDs,
		MissingMemberIDs:  outcome.MissingMemberIDs,
	}, nil
}

// buildIntroduction assembles recipients in group order. Members whose record
// has gone missing fall back to the email captured at formation.
func (s *GroupService) buildIntroduction(log *logger.Logger, group *models.Group) notification.Introduction {
	intro := notification.Introduction{
		GroupID:   group.ID,
		GroupName: group.Name,
		Location:  group.Location,
		LifeStage: group.LifeStage,
	}

	byID := make(map[uuid.UUID]models.Member, len(group.MemberIDs))
	members, err := s.memberRepo.GetByIDs(group.MemberIDs)
	if err != nil {
		log.WithError(err).Warn("could not load group members; using stored emails")
	}
	for _, m := range members {
		byID[m.ID] = m
	}

	now := s.now()
	for i, id := range group.MemberIDs {
		r := notification.Recipient{MemberID: id}
		if m, ok := byID[id]; ok {
			r.Email = m.Email
			r.Name = m.DisplayName()
			if child, ok := m.FirstChild(); ok {
				r.ChildSummary = matching.ChildSummary(child, now)
			}
		} else if i < len(group.MemberEmails) {
			r.Email = group.MemberEmails[i]
		}
		intro.Recipients = append(intro.Recipients, r)
	}
	return intro
}

// orderedSubset keeps the ids of all that appear in some, preserving all's order
func orderedSubset(all, some []uuid.UUID) []uuid.UUID {
	keep := make(map[uuid.UUID]struct{}, len(some))
	for _, id := range some {
		keep[id] = struct{}{}
	}
	out := make([]uuid.UUID, 0, len(some))
	for _, id := range all {
		if _, ok := keep[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func toGroupResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:                 group.ID,
		Name:               group.Name,
		City:               group.Location.City,
		State:              group.Location.State,
		LifeStage:          group.LifeStage,
		Status:             group.Status,
		MemberIDs:          group.MemberIDs,
		MemberEmails:       group.MemberEmails,
		EmailedMemberIDs:   group.EmailedMemberIDs,
		IntroductionSentAt: group.IntroductionSentAt,
		CreatedAt:          group.CreatedAt,
		UpdatedAt:          group.UpdatedAt,
	}
}

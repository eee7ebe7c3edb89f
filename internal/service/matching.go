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
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/runlock"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const runLockName = "matching-pass"

// MatchingService runs matching passes over the unmatched pool
type MatchingService struct {
	memberRepo  repository.MemberRepositoryInterface
	groupRepo   repository.GroupRepositoryInterface
	locker      runlock.Locker
	settings    matching.Settings
	parallelism int
	now         func() time.Time
}

// NewMatchingService creates a matching service. settings must already be validated.
func NewMatchingService(
	memberRepo repository.MemberRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	locker runlock.Locker,
	settings matching.Settings,
	parallelism int,
) *MatchingService {
	if parallelism < 1 {
		parallelism = 1
	}
	if locker == nil {
		locker = runlock.NewLocalLocker()
	}
	return &MatchingService{
		memberRepo:  memberRepo,
		groupRepo:   groupRepo,
		locker:      locker,
		settings:    settings,
		parallelism: parallelism,
		now:         time.Now,
	}
}

// WithClock overrides the clock used for classification and matched_at
func (s *MatchingService) WithClock(now func() time.Time) *MatchingService {
	s.now = now
	return s
}

// RunPassRequest narrows a pass to one location or asks for a dry run
type RunPassRequest struct {
	City   string `json:"city" example:"Austin"`
	State  string `json:"state" example:"TX"`
	DryRun bool   `json:"dry_run"`
}

// FormedGroup summarizes a group created (or, on a dry run, proposed) by a pass
type FormedGroup struct {
	GroupID   *uuid.UUID       `json:"group_id,omitempty"`
	Name      string           `json:"name"`
	City      string           `json:"city"`
	State     string           `json:"state"`
	LifeStage models.LifeStage `json:"life_stage"`
	MemberIDs []uuid.UUID      `json:"member_ids"`
	Gap       float64          `json:"gap_months"`
}

// ChunkFailure records a chunk whose assignment write failed
type ChunkFailure struct {
	City      string           `json:"city"`
	State     string           `json:"state"`
	LifeStage models.LifeStage `json:"life_stage"`
	MemberIDs []uuid.UUID      `json:"member_ids"`
	Error     string           `json:"error"`
}

// PassSummary reports the outcome of one matching pass
type PassSummary struct {
	RunID               uuid.UUID      `json:"run_id"`
	DryRun              bool           `json:"dry_run"`
	StartedAt           time.Time      `json:"started_at"`
	FinishedAt          time.Time      `json:"finished_at"`
	Considered          int            `json:"considered"`
	SkippedNoLocation   int            `json:"skipped_no_location"`
	SkippedUnclassified int            `json:"skipped_unclassified"`
	Partitions          int            `json:"partitions"`
	Groups              []FormedGroup  `json:"groups"`
	Unplaced            int            `json:"unplaced"`
	Failures            []ChunkFailure `json:"failures,omitempty"`
}

// partitionResult is filled by exactly one worker
type partitionResult struct {
	groups   []FormedGroup
	failures []ChunkFailure
	unplaced int
}

// RunPass reads the unmatched pool, forms groups per (location, life stage)
// partition and assigns members. A failed assignment write only loses its own
// chunk; the rest of the pass continues.
func (s *MatchingService) RunPass(ctx context.Context, req *RunPassRequest) (*PassSummary, error) {
	if req == nil {
		req = &RunPassRequest{}
	}
	if (req.City == "") != (req.State == "") {
		return nil, apperrors.NewValidationError("location", "city and state must be given together")
	}

	release, err := s.locker.TryAcquire(ctx, runLockName)
	if err != nil {
		if errors.Is(err, runlock.ErrHeld) {
			return nil, apperrors.ErrMatchingRunInProgress
		}
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	defer release()

	now := s.now().UTC()
	summary := &PassSummary{
		RunID:     uuid.New(),
		DryRun:    req.DryRun,
		StartedAt: now,
	}
	ctx = context.WithValue(ctx, logger.RunIDKey, summary.RunID.String())
	log := logger.WithContext(ctx)

	var filter *repository.LocationFilter
	if req.City != "" {
		filter = &repository.LocationFilter{City: req.City, State: req.State}
	}
	pool, err := s.memberRepo.GetUnmatched(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read unmatched pool: %w", err)
	}

	parts := matching.PartitionPool(pool, now)
	list := parts.List()
	summary.Considered = len(pool)
	summary.SkippedNoLocation = parts.SkippedNoLocation
	summary.SkippedUnclassified = parts.SkippedUnclassified
	summary.Partitions = len(list)

	results := make([]partitionResult, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i := range list {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.processPartition(gctx, list[i], now, req.DryRun)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		summary.Groups = append(summary.Groups, r.groups...)
		summary.Failures = append(summary.Failures, r.failures...)
		summary.Unplaced += r.unplaced
	}
	summary.FinishedAt = s.now().UTC()

	log.WithFields(map[string]interface{}{
		"dry_run":              req.DryRun,
		"considered":           summary.Considered,
		"partitions":           summary.Partitions,
		"groups":               len(summary.Groups),
		"unplaced":             summary.Unplaced,
		"failures":             len(summary.Failures),
		"skipped_no_location":  summary.SkippedNoLocation,
		"skipped_unclassified": summary.SkippedUnclassified,
	}).Info("matching pass finished")

	return summary, nil
}

func (s *MatchingService) processPartition(ctx context.Context, p matching.Partition, now time.Time, dryRun bool) partitionResult {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"location":   p.Location.Key(),
		"life_stage": p.LifeStage,
	})

	proposed, unplaced := matching.FormGroups(p, now, s.settings)
	result := partitionResult{unplaced: unplaced}

	for _, pg := range proposed {
		formed := FormedGroup{
			Name:      pg.Name,
			City:      pg.Location.City,
			State:     pg.Location.State,
			LifeStage: pg.LifeStage,
			MemberIDs: pg.MemberIDs(),
			Gap:       pg.Gap,
		}
		if dryRun {
			result.groups = append(result.groups, formed)
			continue
		}

		group := &models.Group{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			Name:             pg.Name,
			Location:         pg.Location,
			LifeStage:        pg.LifeStage,
			MemberIDs:        formed.MemberIDs,
			MemberEmails:     pg.MemberEmails(),
			Status:           models.GroupStatusPending,
			EmailedMemberIDs: []uuid.UUID{},
		}
		if err := s.groupRepo.CreateWithMembers(group, now); err != nil {
			log.WithError(err).WithField("members", len(formed.MemberIDs)).Error("group assignment failed")
			result.failures = append(result.failures, ChunkFailure{
				City:      pg.Location.City,
				State:     pg.Location.State,
				LifeStage: pg.LifeStage,
				MemberIDs: formed.MemberIDs,
				Error:     err.Error(),
			})
			result.unplaced += len(formed.MemberIDs)
			continue
		}

		id := group.ID
		formed.GroupID = &id
		result.groups = append(result.groups, formed)
		log.WithFields(map[string]interface{}{
			"group_id": group.ID,
			"members":  len(formed.MemberIDs),
			"gap":      pg.Gap,
		}).Info("group formed")
	}
	return result
}

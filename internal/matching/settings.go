package matching

import (
	"fmt"

	"dad-circles-backend/internal/database/models"
	apperrors "dad-circles-backend/internal/errors"
)

const (
	DefaultMinGroupSize = 4
	DefaultMaxGroupSize = 6
)

// Settings carries the tunables for a matching pass. It is passed explicitly
// through the pipeline so alternate thresholds never leak between callers.
type Settings struct {
	MinGroupSize int
	MaxGroupSize int
	// MaxGap is the largest allowed spread of proximity scores (in months) per stage
	MaxGap map[models.LifeStage]float64
	Policy ChunkPolicy
}

// DefaultSettings returns the production sizes, gap thresholds and the fixed-window policy
func DefaultSettings() Settings {
	return Settings{
		MinGroupSize: DefaultMinGroupSize,
		MaxGroupSize: DefaultMaxGroupSize,
		MaxGap:       DefaultMaxGap(),
		Policy:       FixedWindowPolicy,
	}
}

// DefaultMaxGap returns the per-stage gap thresholds in months
func DefaultMaxGap() map[models.LifeStage]float64 {
	return map[models.LifeStage]float64{
		models.LifeStageExpecting: 6,
		models.LifeStageNewborn:   3,
		models.LifeStageInfant:    6,
		models.LifeStageToddler:   12,
	}
}

// Validate checks the settings are usable for a pass
func (s Settings) Validate() error {
	if s.MinGroupSize < 2 {
		return apperrors.NewValidationError("min_group_size", "must be at least 2")
	}
	if s.MaxGroupSize < s.MinGroupSize {
		return apperrors.NewValidationError("max_group_size", "must not be smaller than min_group_size")
	}
	for _, stage := range models.AllLifeStages {
		gap, ok := s.MaxGap[stage]
		if !ok {
			return apperrors.NewValidationError("max_gap", fmt.Sprintf("missing threshold for %s", stage))
		}
		if gap < 0 {
			return apperrors.NewValidationError("max_gap", fmt.Sprintf("negative threshold for %s", stage))
		}
	}
	if s.Policy == nil {
		return apperrors.NewValidationError("policy", "chunk policy is required")
	}
	return nil
}

// GapLimit returns the configured threshold for stage
func (s Settings) GapLimit(stage models.LifeStage) float64 {
	return s.MaxGap[stage]
}

// WithinGap reports whether a chunk's score spread fits the stage threshold
func (s Settings) WithinGap(stage models.LifeStage, chunk []Scored) bool {
	return GapOf(chunk) <= s.GapLimit(stage)
}

// PolicyByName resolves a configured policy name
func PolicyByName(name string) (ChunkPolicy, error) {
	switch name {
	case "", "fixed":
		return FixedWindowPolicy, nil
	case "sliding":
		return SlidingWindowPolicy, nil
	}
	return nil, apperrors.NewValidationError("chunk_policy", fmt.Sprintf("unknown policy %q", name))
}

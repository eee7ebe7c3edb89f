package matching

import (
	"cmp"
	"slices"
	"time"

	"dad-circles-backend/internal/database/models"
)

// daysPerMonth approximates month length when converting due-date distances
const daysPerMonth = 30.0

// Scored pairs a member with its proximity score in months
type Scored struct {
	Member models.Member
	Score  float64
}

// ChunkPolicy slices a score-sorted partition into candidate groups.
// Every returned chunk must respect the size bounds and the stage gap limit.
type ChunkPolicy func(sorted []Scored, stage models.LifeStage, s Settings) [][]Scored

// ProximityScore orders members of the same stage. Expecting members score by
// the signed distance to the due date; born children score by age in months.
func ProximityScore(child models.Child, stage models.LifeStage, now time.Time) float64 {
	if stage == models.LifeStageExpecting {
		due := time.Date(child.BirthYear, time.Month(child.Month()), 1, 0, 0, 0, 0, now.Location())
		days := due.Sub(now).Hours() / 24
		return days / daysPerMonth
	}
	return float64(AgeInMonths(child, now))
}

// SortByProximity scores the partition and stable-sorts it ascending
func SortByProximity(members []models.Member, stage models.LifeStage, now time.Time) []Scored {
	scored := make([]Scored, 0, len(members))
	for _, member := range members {
		child, ok := member.FirstChild()
		if !ok {
			continue
		}
		scored = append(scored, Scored{Member: member, Score: ProximityScore(child, stage, now)})
	}
	slices.SortStableFunc(scored, func(a, b Scored) int {
		return cmp.Compare(a.Score, b.Score)
	})
	return scored
}

// GapOf returns max(score) - min(score) of a chunk
func GapOf(chunk []Scored) float64 {
	if len(chunk) == 0 {
		return 0
	}
	lo, hi := chunk[0].Score, chunk[0].Score
	for _, s := range chunk[1:] {
		lo = min(lo, s.Score)
		hi = max(hi, s.Score)
	}
	return hi - lo
}

// FixedWindowPolicy cuts consecutive windows of MaxGroupSize, discards a
// trailing window below MinGroupSize and drops any window whose gap exceeds the
// stage limit. A dropped window is never re-cut, so up to MaxGroupSize-1
// neighbours can stay unmatched even when a smaller valid subset exists.
func FixedWindowPolicy(sorted []Scored, stage models.LifeStage, s Settings) [][]Scored {
	var out [][]Scored
	for start := 0; start < len(sorted); start += s.MaxGroupSize {
		end := min(start+s.MaxGroupSize, len(sorted))
		chunk := sorted[start:end]
		if len(chunk) < s.MinGroupSize {
			continue
		}
		if !s.WithinGap(stage, chunk) {
			continue
		}
		out = append(out, chunk)
	}
	return out
}

// SlidingWindowPolicy takes, from each position, the largest window within the
// size bounds that fits the gap limit, and otherwise skips one member and retries.
// Opt-in only (CHUNK_POLICY=sliding).
func SlidingWindowPolicy(sorted []Scored, stage models.LifeStage, s Settings) [][]Scored {
	var out [][]Scored
	start := 0
	for start+s.MinGroupSize <= len(sorted) {
		taken := 0
		for size := min(s.MaxGroupSize, len(sorted)-start); size >= s.MinGroupSize; size-- {
			if s.WithinGap(stage, sorted[start:start+size]) {
				taken = size
				break
			}
		}
		if taken == 0 {
			start++
			continue
		}
		out = append(out, sorted[start:start+taken])
		start += taken
	}
	return out
}

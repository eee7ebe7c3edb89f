package matching

import (
	"sort"
	"time"

	"dad-circles-backend/internal/database/models"
)

// Partition is the set of members sharing one location and life stage
type Partition struct {
	Location  models.Location
	LifeStage models.LifeStage
	Members   []models.Member
}

// Partitions groups an unmatched pool by location key and then life stage
type Partitions struct {
	Buckets             map[string]map[models.LifeStage][]models.Member
	SkippedNoLocation   int
	SkippedUnclassified int

	locations map[string]models.Location
}

// PartitionPool splits the pool. Members without a location or a classifiable
// first child are counted and left out; they are not errors.
func PartitionPool(pool []models.Member, now time.Time) *Partitions {
	p := &Partitions{
		Buckets:   make(map[string]map[models.LifeStage][]models.Member),
		locations: make(map[string]models.Location),
	}

	for _, member := range pool {
		if !member.Location.IsSet() {
			p.SkippedNoLocation++
			continue
		}
		stage, ok := ClassifyMember(&member, now)
		if !ok {
			p.SkippedUnclassified++
			continue
		}

		key := member.Location.Key()
		byStage, exists := p.Buckets[key]
		if !exists {
			byStage = make(map[models.LifeStage][]models.Member)
			p.Buckets[key] = byStage
			p.locations[key] = member.Location
		}
		byStage[stage] = append(byStage[stage], member)
	}

	return p
}

// List returns every partition ordered by location key and then developmental stage
func (p *Partitions) List() []Partition {
	keys := make([]string, 0, len(p.Buckets))
	for key := range p.Buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []Partition
	for _, key := range keys {
		for _, stage := range models.AllLifeStages {
			members := p.Buckets[key][stage]
			if len(members) == 0 {
				continue
			}
			out = append(out, Partition{
				Location:  p.locations[key],
				LifeStage: stage,
				Members:   members,
			})
		}
	}
	return out
}

// Classified returns how many members landed in some partition
func (p *Partitions) Classified() int {
	n := 0
	for _, byStage := range p.Buckets {
		for _, members := range byStage {
			n += len(members)
		}
	}
	return n
}

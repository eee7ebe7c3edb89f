package matching

import (
	"testing"

	"dad-circles-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	pool := []models.Member{
		newMember("Austin", "TX", childAged(2)),
		newMember("Austin", "TX", childAged(3)),
		newMember("Austin", "TX", childAged(10)),
		newMember("Denver", "CO", childAged(2)),
		newMember("Austin", "", childAged(2)),
		newMember("", "TX", childAged(2)),
		newMember("Austin", "TX", childAged(48)),
		newMember("Austin", "TX"),
	}

	p := PartitionPool(pool, referenceNow)

	assert.Equal(t, 2, p.SkippedNoLocation)
	assert.Equal(t, 2, p.SkippedUnclassified)
	assert.Equal(t, 4, p.Classified())
	assert.Len(t, p.Buckets["Austin|TX"][models.LifeStageNewborn], 2)
	assert.Len(t, p.Buckets["Austin|TX"][models.LifeStageInfant], 1)
	assert.Len(t, p.Buckets["Denver|CO"][models.LifeStageNewborn], 1)
}

func TestPartitionsListIsOrdered(t *testing.T) {
	pool := []models.Member{
		newMember("Denver", "CO", childAged(20)),
		newMember("Austin", "TX", childAged(20)),
		newMember("Austin", "TX", childAged(2)),
	}

	list := PartitionPool(pool, referenceNow).List()

	require.Len(t, list, 3)
	assert.Equal(t, "Austin", list[0].Location.City)
	assert.Equal(t, models.LifeStageNewborn, list[0].LifeStage)
	assert.Equal(t, models.LifeStageToddler, list[1].LifeStage)
	assert.Equal(t, "Denver", list[2].Location.City)
}

func TestPartitionKeepsSameCityDifferentStateApart(t *testing.T) {
	pool := []models.Member{
		newMember("Portland", "OR", childAged(2)),
		newMember("Portland", "ME", childAged(2)),
	}

	p := PartitionPool(pool, referenceNow)
	assert.Len(t, p.Buckets, 2)
}

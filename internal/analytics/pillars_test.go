package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

func tagged(p models.Pillar, day int) models.JournalEntry {
	return models.JournalEntry{Pillar: p, DayInTrack: day}
}

func TestDistributionEmpty(t *testing.T) {
	dist := Distribution(nil)
	require.Len(t, dist, 4)
	for _, p := range models.AllPillars() {
		assert.Equal(t, PillarStat{}, dist[p], "pillar %s", p)
	}
}

func TestDistributionCountsAndPercentages(t *testing.T) {
	entries := []models.JournalEntry{
		tagged(models.PillarMoney, 1),
		tagged(models.PillarMoney, 2),
		tagged(models.PillarDiscipline, 1),
		tagged(models.PillarEgo, 1),
	}
	dist := Distribution(entries)

	assert.Equal(t, 2, dist[models.PillarMoney].Count)
	assert.Equal(t, 50, dist[models.PillarMoney].Percentage)
	assert.Equal(t, 25, dist[models.PillarEgo].Percentage)
	assert.Equal(t, 25, dist[models.PillarDiscipline].Percentage)
	assert.Equal(t, PillarStat{}, dist[models.PillarRelationships])
}

func TestDistributionExcludesUntaggedFromDenominator(t *testing.T) {
	entries := []models.JournalEntry{
		tagged(models.PillarMoney, 1),
		{}, // untagged: not a fifth category
		{},
	}
	dist := Distribution(entries)
	assert.Equal(t, 100, dist[models.PillarMoney].Percentage)
	assert.Equal(t, 1, dist[models.PillarMoney].Count)
}

func TestDistributionRoundingSlack(t *testing.T) {
	// 3-way split: independent rounding gives 33+33+33=99. Any non-empty
	// window must land within 99-101.
	entries := []models.JournalEntry{
		tagged(models.PillarMoney, 1),
		tagged(models.PillarEgo, 1),
		tagged(models.PillarDiscipline, 1),
	}
	dist := Distribution(entries)

	sum := 0
	for _, stat := range dist {
		sum += stat.Percentage
	}
	assert.GreaterOrEqual(t, sum, 99)
	assert.LessOrEqual(t, sum, 101)
}

func TestHighestDayInTrack(t *testing.T) {
	entries := []models.JournalEntry{
		tagged(models.PillarMoney, 3),
		tagged(models.PillarMoney, 7),
		tagged(models.PillarMoney, 5), // out of order and regressing: still a max
		tagged(models.PillarEgo, 12),
	}
	assert.Equal(t, 7, HighestDayInTrack(entries, models.PillarMoney))
	assert.Equal(t, 12, HighestDayInTrack(entries, models.PillarEgo))
	assert.Equal(t, 0, HighestDayInTrack(entries, models.PillarDiscipline))
	assert.Equal(t, 0, HighestDayInTrack(nil, models.PillarMoney))
}

func TestNextDayInTrack(t *testing.T) {
	const trackLength = 30

	assert.Equal(t, 1, NextDayInTrack(nil, models.PillarMoney, trackLength))

	almostDone := []models.JournalEntry{tagged(models.PillarMoney, 29)}
	assert.Equal(t, 30, NextDayInTrack(almostDone, models.PillarMoney, trackLength))

	// Finished tracks clamp to the final day instead of running past it.
	done := []models.JournalEntry{tagged(models.PillarMoney, 30)}
	assert.Equal(t, 30, NextDayInTrack(done, models.PillarMoney, trackLength))
}

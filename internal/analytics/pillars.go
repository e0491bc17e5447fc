package analytics

import (
	"math"

	"github.com/samber/lo"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

// PillarStat is one pillar's share of a recent entry window.
type PillarStat struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// Distribution returns, for each of the four pillars, how many entries in the
// window carry that tag and that count's percentage of all tagged entries.
// Untagged entries are excluded from the denominator rather than counted as a
// fifth category. Percentages round to the nearest whole number independently
// per pillar, so the sum can land anywhere in 99-101 for non-empty input.
func Distribution(entries []models.JournalEntry) map[models.Pillar]PillarStat {
	tagged := lo.Filter(entries, func(e models.JournalEntry, _ int) bool {
		return e.Pillar.Valid()
	})
	counts := lo.CountValuesBy(tagged, func(e models.JournalEntry) models.Pillar {
		return e.Pillar
	})

	dist := make(map[models.Pillar]PillarStat, 4)
	for _, p := range models.AllPillars() {
		stat := PillarStat{Count: counts[p]}
		if len(tagged) > 0 {
			stat.Percentage = int(math.Round(float64(stat.Count) / float64(len(tagged)) * 100))
		}
		dist[p] = stat
	}
	return dist
}

// HighestDayInTrack returns the furthest day-in-track the user has reached in
// the pillar's guided sequence, or 0 with no entries for it. It is a plain
// max, so input order and gaps in the sequence don't matter.
func HighestDayInTrack(entries []models.JournalEntry, pillar models.Pillar) int {
	highest := 0
	for _, e := range entries {
		if e.Pillar == pillar && e.DayInTrack > highest {
			highest = e.DayInTrack
		}
	}
	return highest
}

// NextDayInTrack returns which guided-prompt day to serve next for the
// pillar: one past the furthest day reached, clamped to trackLength so a
// finished track keeps serving its final day.
func NextDayInTrack(entries []models.JournalEntry, pillar models.Pillar, trackLength int) int {
	next := HighestDayInTrack(entries, pillar) + 1
	if next > trackLength {
		return trackLength
	}
	return next
}

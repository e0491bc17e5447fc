package analytics

import (
	"time"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

// MoodPoint is one day of the mood series. Mood is nil for days with no
// recorded mood; the heatmap renders those as empty cells.
type MoodPoint struct {
	Date string `json:"date"`
	Mood *int   `json:"mood"`
}

// MoodSeries returns exactly n points covering the calendar days
// [endDay-(n-1), endDay], oldest first. Every day in the range appears even
// when the store has no entry for it. When several entries share a date the
// first one seen wins; moods are never averaged or overwritten.
func MoodSeries(entries []models.JournalEntry, endDay time.Time, n int) []MoodPoint {
	if n <= 0 {
		return []MoodPoint{}
	}

	byDay := make(map[string]*int, len(entries))
	for _, e := range entries {
		day := e.Day()
		if _, seen := byDay[day]; seen {
			continue
		}
		byDay[day] = e.Mood
	}

	series := make([]MoodPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := endDay.AddDate(0, 0, -i).Format(models.EntryDateLayout)
		series = append(series, MoodPoint{Date: day, Mood: byDay[day]})
	}
	return series
}

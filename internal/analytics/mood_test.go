package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

func moodEntry(date string, mood int) models.JournalEntry {
	return models.JournalEntry{Date: date, Mood: &mood}
}

func TestMoodSeriesFillsGaps(t *testing.T) {
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		moodEntry("2024-06-01", 4),
		moodEntry("2024-06-03", 2),
	}

	series := MoodSeries(entries, end, 3)
	require.Len(t, series, 3)

	assert.Equal(t, "2024-06-01", series[0].Date)
	require.NotNil(t, series[0].Mood)
	assert.Equal(t, 4, *series[0].Mood)

	assert.Equal(t, "2024-06-02", series[1].Date)
	assert.Nil(t, series[1].Mood)

	assert.Equal(t, "2024-06-03", series[2].Date)
	require.NotNil(t, series[2].Mood)
	assert.Equal(t, 2, *series[2].Mood)
}

func TestMoodSeriesEmptyStore(t *testing.T) {
	series := MoodSeries(nil, testToday, 5)
	require.Len(t, series, 5)
	for i, pt := range series {
		assert.Nil(t, pt.Mood, "point %d", i)
	}
	// Dates are the 5 consecutive days ending today, oldest first.
	assert.Equal(t, daysAgo(4), series[0].Date)
	assert.Equal(t, daysAgo(0), series[4].Date)
}

func TestMoodSeriesExactLengthRegardlessOfEntries(t *testing.T) {
	var entries []models.JournalEntry
	for i := 0; i < 40; i++ {
		entries = append(entries, moodEntry(daysAgo(i), 3))
	}
	assert.Len(t, MoodSeries(entries, testToday, 5), 5)
	assert.Len(t, MoodSeries(entries, testToday, 30), 30)
}

func TestMoodSeriesFirstEntryPerDayWins(t *testing.T) {
	entries := []models.JournalEntry{
		moodEntry(daysAgo(0), 5),
		moodEntry(daysAgo(0), 1), // later duplicate must not overwrite
	}
	series := MoodSeries(entries, testToday, 1)
	require.Len(t, series, 1)
	require.NotNil(t, series[0].Mood)
	assert.Equal(t, 5, *series[0].Mood)
}

func TestMoodSeriesEntryWithoutMood(t *testing.T) {
	// An entry exists for the day but no mood was recorded: stays nil, never
	// coerced to zero or the scale midpoint.
	entries := []models.JournalEntry{{Date: daysAgo(0)}}
	series := MoodSeries(entries, testToday, 1)
	require.Len(t, series, 1)
	assert.Nil(t, series[0].Mood)
}

func TestMoodSeriesNonPositiveWindow(t *testing.T) {
	assert.Empty(t, MoodSeries(nil, testToday, 0))
	assert.Empty(t, MoodSeries(nil, testToday, -3))
}

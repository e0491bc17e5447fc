package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

var testToday = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func entryOn(date string) models.JournalEntry {
	return models.JournalEntry{Date: date}
}

func daysAgo(n int) string {
	return testToday.AddDate(0, 0, -n).Format(models.EntryDateLayout)
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, testToday))
	assert.Equal(t, 0, CurrentStreak([]models.JournalEntry{}, testToday))
}

func TestCurrentStreakBrokenBeforeYesterday(t *testing.T) {
	// Most recent entry is two days old: the streak is dead even though the
	// user once had a long run.
	entries := []models.JournalEntry{
		entryOn(daysAgo(2)),
		entryOn(daysAgo(3)),
		entryOn(daysAgo(4)),
	}
	assert.Equal(t, 0, CurrentStreak(entries, testToday))
}

func TestCurrentStreakThreeDays(t *testing.T) {
	entries := []models.JournalEntry{
		entryOn(daysAgo(0)),
		entryOn(daysAgo(1)),
		entryOn(daysAgo(2)),
	}
	assert.Equal(t, 3, CurrentStreak(entries, testToday))
}

func TestCurrentStreakExtendsAcrossContiguousDays(t *testing.T) {
	// A 4th day directly adjacent to the run extends it.
	entries := []models.JournalEntry{
		entryOn(daysAgo(0)),
		entryOn(daysAgo(1)),
		entryOn(daysAgo(2)),
		entryOn(daysAgo(3)),
	}
	assert.Equal(t, 4, CurrentStreak(entries, testToday))
}

func TestCurrentStreakHaltsAtGap(t *testing.T) {
	// Entry at 4 days ago sits behind a 2-day gap; counting stops at the gap.
	entries := []models.JournalEntry{
		entryOn(daysAgo(0)),
		entryOn(daysAgo(1)),
		entryOn(daysAgo(2)),
		entryOn(daysAgo(4)),
	}
	assert.Equal(t, 3, CurrentStreak(entries, testToday))
}

func TestCurrentStreakGraceWindow(t *testing.T) {
	// Journaled yesterday but not yet today: streak stays alive.
	entries := []models.JournalEntry{
		entryOn(daysAgo(1)),
		entryOn(daysAgo(2)),
	}
	assert.Equal(t, 2, CurrentStreak(entries, testToday))
}

func TestCurrentStreakDedupsSameDay(t *testing.T) {
	// Three entries today plus one yesterday count as a 2-day streak.
	entries := []models.JournalEntry{
		entryOn(daysAgo(0)),
		entryOn(daysAgo(0)),
		entryOn(daysAgo(0)),
		entryOn(daysAgo(1)),
	}
	assert.Equal(t, 2, CurrentStreak(entries, testToday))
}

func TestCurrentStreakUnsortedInput(t *testing.T) {
	entries := []models.JournalEntry{
		entryOn(daysAgo(2)),
		entryOn(daysAgo(0)),
		entryOn(daysAgo(1)),
	}
	assert.Equal(t, 3, CurrentStreak(entries, testToday))
}

func TestCurrentStreakFallsBackToCreatedAt(t *testing.T) {
	// Legacy entries without a date field use their creation timestamp.
	entries := []models.JournalEntry{
		{CreatedAt: testToday},
		{CreatedAt: testToday.AddDate(0, 0, -1)},
	}
	assert.Equal(t, 2, CurrentStreak(entries, testToday))
}

func TestCurrentStreakTruncatedWindow(t *testing.T) {
	// With only the most recent 5 entries of a 10-day run fetched, the
	// streak reports 5. The bounded window truncates long streaks.
	var entries []models.JournalEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, entryOn(daysAgo(i)))
	}
	assert.Equal(t, 5, CurrentStreak(entries, testToday))
}

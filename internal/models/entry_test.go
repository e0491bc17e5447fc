package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestValidateAcceptsMinimalEntry(t *testing.T) {
	assert.NoError(t, JournalEntry{}.Validate())
	assert.NoError(t, JournalEntry{Date: "2024-06-15", Title: "morning pages"}.Validate())
}

func TestValidateDateFormat(t *testing.T) {
	assert.NoError(t, JournalEntry{Date: "2024-06-15"}.Validate())
	assert.Error(t, JournalEntry{Date: "15/06/2024"}.Validate())
	assert.Error(t, JournalEntry{Date: "2024-6-5"}.Validate())
}

func TestValidatePillar(t *testing.T) {
	for _, p := range AllPillars() {
		assert.NoError(t, JournalEntry{Pillar: p}.Validate())
	}
	assert.Error(t, JournalEntry{Pillar: "stoicism"}.Validate())
}

func TestValidateMoodBounds(t *testing.T) {
	for mood := MoodMin; mood <= MoodMax; mood++ {
		assert.NoError(t, JournalEntry{Mood: intPtr(mood)}.Validate())
	}
	assert.Error(t, JournalEntry{Mood: intPtr(0)}.Validate())
	assert.Error(t, JournalEntry{Mood: intPtr(6)}.Validate())
	assert.NoError(t, JournalEntry{Mood: nil}.Validate(), "absent mood is valid")
}

func TestValidateDayInTrack(t *testing.T) {
	assert.NoError(t, JournalEntry{Pillar: PillarDiscipline, DayInTrack: 12}.Validate())
	assert.Error(t, JournalEntry{DayInTrack: -1}.Validate())
	assert.Error(t, JournalEntry{DayInTrack: 3}.Validate(), "day_in_track without a pillar")
}

func TestDayPrefersStoredDate(t *testing.T) {
	entry := JournalEntry{
		Date:      "2024-06-15",
		CreatedAt: time.Date(2024, 6, 16, 1, 30, 0, 0, time.UTC),
	}
	// The stored date wins even when the server-side timestamp crossed
	// midnight into the next day.
	assert.Equal(t, "2024-06-15", entry.Day())
}

func TestDayFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2024, 6, 16, 1, 30, 0, 0, time.UTC)

	for _, date := range []string{"", "not-a-date"} {
		entry := JournalEntry{Date: date, CreatedAt: created}
		assert.Equal(t, "2024-06-16", entry.Day())
	}
}

func TestPillarValid(t *testing.T) {
	require.Len(t, AllPillars(), 4)
	assert.False(t, Pillar("").Valid())
	assert.False(t, Pillar("Money").Valid(), "pillar tags are case sensitive")
}

package analytics

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

// CurrentStreak returns the number of consecutive calendar days, counting
// backward from today, on which the user wrote at least one entry. Multiple
// entries on the same day count once. A user who journaled yesterday but not
// yet today still has a live streak.
//
// Callers pass a bounded recent window of entries (config.StreakEntryLimit);
// a streak longer than the window is truncated to the window. That is an
// accepted cost/accuracy tradeoff, not a bug.
func CurrentStreak(entries []models.JournalEntry, today time.Time) int {
	days := lo.Uniq(lo.Map(entries, func(e models.JournalEntry, _ int) string {
		return e.Day()
	}))
	if len(days) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	todayStr := today.Format(models.EntryDateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(models.EntryDateLayout)
	if days[0] != todayStr && days[0] != yesterdayStr {
		return 0
	}

	prev, err := time.Parse(models.EntryDateLayout, days[0])
	if err != nil {
		return 0
	}

	streak := 1
	for _, day := range days[1:] {
		cur, err := time.Parse(models.EntryDateLayout, day)
		if err != nil {
			break
		}
		// Stop at the first gap wider than one day; earlier runs don't count.
		if !cur.AddDate(0, 0, 1).Equal(prev) {
			break
		}
		streak++
		prev = cur
	}
	return streak
}

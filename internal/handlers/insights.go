package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/stoicaf/stoicaf-backend/internal/analytics"
	"github.com/stoicaf/stoicaf-backend/internal/models"
	"github.com/stoicaf/stoicaf-backend/internal/services"
)

// InsightsResponse is the full dashboard payload: streak, pillar
// distribution, next guided day per pillar, and the mood series.
type InsightsResponse struct {
	Success  bool                                   `json:"success"`
	Message  string                                 `json:"message,omitempty"`
	Streak   int                                    `json:"streak"`
	Pillars  map[models.Pillar]analytics.PillarStat `json:"pillars"`
	NextDays map[models.Pillar]int                  `json:"next_days"`
	Mood     []analytics.MoodPoint                  `json:"mood"`
}

type MoodSeriesResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Mood    []analytics.MoodPoint `json:"mood"`
}

// GetInsights computes (or serves from cache) the authenticated user's
// dashboard analytics. The three entry windows are independent read-only
// queries, so they are fetched concurrently; the aggregators only run once
// every fetch has succeeded.
func GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, InsightsResponse{Success: false, Message: "Authentication required"})
		return
	}

	cacheKey := services.InsightsCacheKey(userID.String())
	var cached InsightsResponse
	if hit, _ := services.Cache.Get(cacheKey, &cached); hit {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	today := time.Now()
	moodFrom := today.AddDate(0, 0, -(cfg.MoodWindowDays - 1)).Format(models.EntryDateLayout)
	moodTo := today.Format(models.EntryDateLayout)

	var (
		wg          sync.WaitGroup
		recent      []models.JournalEntry // streak + track progress window
		distWindow  []models.JournalEntry
		moodEntries []models.JournalEntry
		recentErr   error
		distErr     error
		moodErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		recent, recentErr = entryStore.Recent(ctx, userID.String(), int64(cfg.StreakEntryLimit))
	}()
	go func() {
		defer wg.Done()
		distWindow, distErr = entryStore.Recent(ctx, userID.String(), int64(cfg.DistributionWindow))
	}()
	go func() {
		defer wg.Done()
		moodEntries, moodErr = entryStore.DateRange(ctx, userID.String(), moodFrom, moodTo)
	}()
	wg.Wait()

	// Partial data never reaches the aggregators: any failed fetch fails the
	// whole request and the client shows a retry affordance.
	if recentErr != nil || distErr != nil || moodErr != nil {
		writeJSON(w, http.StatusInternalServerError, InsightsResponse{Success: false, Message: "Failed to fetch entries"})
		return
	}

	nextDays := make(map[models.Pillar]int, 4)
	for _, p := range models.AllPillars() {
		nextDays[p] = analytics.NextDayInTrack(recent, p, cfg.TrackLength)
	}

	resp := InsightsResponse{
		Success:  true,
		Streak:   analytics.CurrentStreak(recent, today),
		Pillars:  analytics.Distribution(distWindow),
		NextDays: nextDays,
		Mood:     analytics.MoodSeries(moodEntries, today, cfg.MoodWindowDays),
	}

	// Cached until the next entry mutation or TTL expiry; a failed cache
	// write is not worth failing the request over.
	_ = services.Cache.Set(cacheKey, resp)

	writeJSON(w, http.StatusOK, resp)
}

// GetMoodSeries returns a dense mood series of ?days=N calendar days ending
// today, for standalone heatmap/sparkline views.
func GetMoodSeries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, MoodSeriesResponse{Success: false, Message: "Authentication required"})
		return
	}

	days := cfg.MoodWindowDays
	if parsed, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && parsed > 0 {
		days = parsed
	}
	if days > 365 {
		days = 365
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	today := time.Now()
	from := today.AddDate(0, 0, -(days - 1)).Format(models.EntryDateLayout)
	to := today.Format(models.EntryDateLayout)

	entries, err := entryStore.DateRange(ctx, userID.String(), from, to)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, MoodSeriesResponse{Success: false, Message: "Failed to fetch entries"})
		return
	}

	writeJSON(w, http.StatusOK, MoodSeriesResponse{
		Success: true,
		Mood:    analytics.MoodSeries(entries, today, days),
	})
}

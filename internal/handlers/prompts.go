package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/stoicaf/stoicaf-backend/internal/analytics"
	"github.com/stoicaf/stoicaf-backend/internal/models"
	"github.com/stoicaf/stoicaf-backend/internal/prompts"
)

type NextPromptResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Pillar  models.Pillar `json:"pillar,omitempty"`
	Day     int           `json:"day,omitempty"`
	Prompt  string        `json:"prompt,omitempty"`
}

// NextPrompt returns the guided prompt the user should see next for a
// pillar: one day past their furthest day-in-track, clamped to the end of
// the 30-day sequence.
func NextPrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, NextPromptResponse{Success: false, Message: "Authentication required"})
		return
	}

	pillar := models.Pillar(r.URL.Query().Get("pillar"))
	if !pillar.Valid() {
		writeJSON(w, http.StatusBadRequest, NextPromptResponse{Success: false, Message: "A valid pillar is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := entryStore.ByPillar(ctx, userID.String(), pillar, int64(cfg.StreakEntryLimit))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, NextPromptResponse{Success: false, Message: "Failed to fetch entries"})
		return
	}

	day := analytics.NextDayInTrack(entries, pillar, cfg.TrackLength)
	prompt, ok := prompts.ForDay(pillar, day)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, NextPromptResponse{Success: false, Message: "No prompt available"})
		return
	}

	writeJSON(w, http.StatusOK, NextPromptResponse{
		Success: true,
		Pillar:  pillar,
		Day:     day,
		Prompt:  prompt,
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stoicaf/stoicaf-backend/internal/config"
	"github.com/stoicaf/stoicaf-backend/internal/models"
	"github.com/stoicaf/stoicaf-backend/internal/services"
	"github.com/stoicaf/stoicaf-backend/internal/store"
)

var (
	cfg        *config.Config
	entryStore *store.EntryStore
)

// InitJournal wires the handlers to config and the entry store. Called once
// from main before the router starts serving.
func InitJournal(c *config.Config, s *store.EntryStore) {
	cfg = c
	entryStore = s
}

type EntryRequest struct {
	Date       string                `json:"date"`
	Pillar     models.Pillar         `json:"pillar,omitempty"`
	Mood       *int                  `json:"mood,omitempty"`
	DayInTrack int                   `json:"day_in_track,omitempty"`
	Title      string                `json:"title,omitempty"`
	Content    []models.ContentBlock `json:"content,omitempty"`
}

type EntryResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Entry   *models.JournalEntry `json:"entry,omitempty"`
}

type ListEntriesResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Entries []models.JournalEntry `json:"entries"`
	Total   int64                 `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// entryFromRequest builds an entry owned by userID from the request body.
func entryFromRequest(userID string, req EntryRequest) models.JournalEntry {
	return models.JournalEntry{
		UserID:     userID,
		Date:       req.Date,
		Pillar:     req.Pillar,
		Mood:       req.Mood,
		DayInTrack: req.DayInTrack,
		Title:      req.Title,
		Content:    req.Content,
	}
}

// CreateEntry creates a journal entry for the authenticated user.
func CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, EntryResponse{Success: false, Message: "Authentication required"})
		return
	}

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: "Invalid request body"})
		return
	}

	entry := entryFromRequest(userID.String(), req)
	if entry.Title == "" && len(entry.Content) == 0 {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: "Title or content is required"})
		return
	}
	if err := entry.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := entryStore.Create(ctx, &entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, EntryResponse{Success: false, Message: "Failed to create entry"})
		return
	}

	services.NotifyEntriesChanged(ctx, userID.String(), services.RefreshReasonEntryCreated)

	writeJSON(w, http.StatusCreated, EntryResponse{
		Success: true,
		Message: "Entry created successfully",
		Entry:   &entry,
	})
}

// ListEntries returns a page of the authenticated user's entries,
// newest-first, optionally filtered by pillar.
func ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ListEntriesResponse{Success: false, Message: "Authentication required", Entries: []models.JournalEntry{}})
		return
	}

	limit := int64(20)
	if parsed, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && parsed > 0 {
		limit = parsed
	}
	skip := int64(0)
	if parsed, err := strconv.ParseInt(r.URL.Query().Get("skip"), 10, 64); err == nil && parsed >= 0 {
		skip = parsed
	}

	pillar := models.Pillar(r.URL.Query().Get("pillar"))
	if pillar != "" && !pillar.Valid() {
		writeJSON(w, http.StatusBadRequest, ListEntriesResponse{Success: false, Message: "Unknown pillar", Entries: []models.JournalEntry{}})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := entryStore.Count(ctx, userID.String())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ListEntriesResponse{Success: false, Entries: []models.JournalEntry{}})
		return
	}

	entries, err := entryStore.List(ctx, userID.String(), pillar, limit, skip)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ListEntriesResponse{Success: false, Entries: []models.JournalEntry{}})
		return
	}

	writeJSON(w, http.StatusOK, ListEntriesResponse{
		Success: true,
		Entries: entries,
		Total:   total,
	})
}

// entryIDFromURL parses the {id} route parameter.
func entryIDFromURL(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// GetEntry returns a single entry the authenticated user owns.
func GetEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, EntryResponse{Success: false, Message: "Authentication required"})
		return
	}

	id, err := entryIDFromURL(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: "Invalid entry id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := entryStore.GetByID(ctx, userID.String(), id)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			writeJSON(w, http.StatusNotFound, EntryResponse{Success: false, Message: "Entry not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, EntryResponse{Success: false, Message: "Failed to fetch entry"})
		return
	}

	writeJSON(w, http.StatusOK, EntryResponse{Success: true, Entry: entry})
}

// UpdateEntry replaces the editable fields of an entry the user owns.
func UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, EntryResponse{Success: false, Message: "Authentication required"})
		return
	}

	id, err := entryIDFromURL(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: "Invalid entry id"})
		return
	}

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: "Invalid request body"})
		return
	}

	entry := entryFromRequest(userID.String(), req)
	if err := entry.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := entryStore.Update(ctx, userID.String(), id, &entry); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			writeJSON(w, http.StatusNotFound, EntryResponse{Success: false, Message: "Entry not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, EntryResponse{Success: false, Message: "Failed to update entry"})
		return
	}

	services.NotifyEntriesChanged(ctx, userID.String(), services.RefreshReasonEntryUpdated)

	writeJSON(w, http.StatusOK, EntryResponse{Success: true, Message: "Entry updated successfully"})
}

// DeleteEntry removes an entry the user owns.
func DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, EntryResponse{Success: false, Message: "Authentication required"})
		return
	}

	id, err := entryIDFromURL(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, EntryResponse{Success: false, Message: "Invalid entry id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := entryStore.Delete(ctx, userID.String(), id); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			writeJSON(w, http.StatusNotFound, EntryResponse{Success: false, Message: "Entry not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, EntryResponse{Success: false, Message: "Failed to delete entry"})
		return
	}

	services.NotifyEntriesChanged(ctx, userID.String(), services.RefreshReasonEntryDeleted)

	writeJSON(w, http.StatusOK, EntryResponse{Success: true, Message: "Entry deleted successfully"})
}

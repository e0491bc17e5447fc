package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryDateLayout is the calendar-date format entries are keyed by.
// The date records the user's local day at save time.
const EntryDateLayout = "2006-01-02"

// Pillar is one of the four fixed life-focus tags an entry can carry.
type Pillar string

const (
	PillarMoney         Pillar = "money"
	PillarEgo           Pillar = "ego"
	PillarRelationships Pillar = "relationships"
	PillarDiscipline    Pillar = "discipline"
)

// AllPillars returns the closed set of pillar tags in display order.
func AllPillars() []Pillar {
	return []Pillar{PillarMoney, PillarEgo, PillarRelationships, PillarDiscipline}
}

// Valid reports whether p is one of the four known tags.
func (p Pillar) Valid() bool {
	switch p {
	case PillarMoney, PillarEgo, PillarRelationships, PillarDiscipline:
		return true
	}
	return false
}

// Mood score bounds (ordinal 1-5 self-rating; absent is nil, never 0).
const (
	MoodMin = 1
	MoodMax = 5
)

// ContentBlock is one block of entry content. Content is opaque to the
// analytics layer; only the frontend editor interprets block types.
type ContentBlock struct {
	Type string `bson:"type" json:"type"`
	Text string `bson:"text" json:"text"`
}

// JournalEntry represents a single journal entry owned by exactly one user
type JournalEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	Date       string             `bson:"date" json:"date"`
	Pillar     Pillar             `bson:"pillar,omitempty" json:"pillar,omitempty"`
	Mood       *int               `bson:"mood,omitempty" json:"mood,omitempty"`
	DayInTrack int                `bson:"day_in_track,omitempty" json:"day_in_track,omitempty"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Content    []ContentBlock     `bson:"content,omitempty" json:"content,omitempty"`
}

// Day returns the entry's calendar date string. The stored date is
// authoritative; entries written before the date field existed fall back to
// the creation timestamp formatted in server-local time.
func (e JournalEntry) Day() string {
	if _, err := time.Parse(EntryDateLayout, e.Date); err == nil {
		return e.Date
	}
	return e.CreatedAt.Format(EntryDateLayout)
}

// Validate checks the fields a client may set on create or update.
// Out-of-range moods and unknown pillars are rejected here so the analytics
// layer can assume well-formed input.
func (e JournalEntry) Validate() error {
	if e.Date != "" {
		if _, err := time.Parse(EntryDateLayout, e.Date); err != nil {
			return fmt.Errorf("date must be formatted as %s", EntryDateLayout)
		}
	}
	if e.Pillar != "" && !e.Pillar.Valid() {
		return fmt.Errorf("unknown pillar %q", e.Pillar)
	}
	if e.Mood != nil && (*e.Mood < MoodMin || *e.Mood > MoodMax) {
		return fmt.Errorf("mood must be between %d and %d", MoodMin, MoodMax)
	}
	if e.DayInTrack < 0 {
		return errors.New("day_in_track cannot be negative")
	}
	if e.DayInTrack > 0 && e.Pillar == "" {
		return errors.New("day_in_track requires a pillar")
	}
	return nil
}

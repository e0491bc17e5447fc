package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

const entriesCollection = "entries"

// ErrEntryNotFound is returned when an entry does not exist or belongs to a
// different user. Callers cannot tell the two apart on purpose.
var ErrEntryNotFound = errors.New("entry not found")

// EntryStore is the query gateway over the entries collection. The analytics
// functions never touch the database themselves; everything they consume
// comes through these reads.
type EntryStore struct {
	db *mongo.Database
}

func NewEntryStore(db *mongo.Database) *EntryStore {
	return &EntryStore{db: db}
}

func (s *EntryStore) collection() *mongo.Collection {
	return s.db.Collection(entriesCollection)
}

// EnsureIndexes creates the indexes the analytics queries depend on.
func (s *EntryStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "pillar", Value: 1}}},
	})
	return err
}

// Create inserts a new entry, assigning its ID and timestamps.
func (s *EntryStore) Create(ctx context.Context, entry *models.JournalEntry) error {
	now := time.Now()
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.Date == "" {
		entry.Date = now.Format(models.EntryDateLayout)
	}

	_, err := s.collection().InsertOne(ctx, entry)
	return err
}

// GetByID fetches one entry, scoped to the owning user.
func (s *EntryStore) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.collection().FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Update replaces the client-editable fields of an entry the user owns.
func (s *EntryStore) Update(ctx context.Context, userID string, id primitive.ObjectID, entry *models.JournalEntry) error {
	update := bson.M{"$set": bson.M{
		"updated_at":   time.Now(),
		"date":         entry.Date,
		"pillar":       entry.Pillar,
		"mood":         entry.Mood,
		"day_in_track": entry.DayInTrack,
		"title":        entry.Title,
		"content":      entry.Content,
	}}
	res, err := s.collection().UpdateOne(ctx, bson.M{"_id": id, "user_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete removes an entry the user owns.
func (s *EntryStore) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Count returns the user's total entry count.
func (s *EntryStore) Count(ctx context.Context, userID string) (int64, error) {
	return s.collection().CountDocuments(ctx, bson.M{"user_id": userID})
}

// Recent returns up to limit entries ordered newest-first by creation time.
// This is the bounded window the streak and track-progress computations read.
func (s *EntryStore) Recent(ctx context.Context, userID string, limit int64) ([]models.JournalEntry, error) {
	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)
	return s.find(ctx, bson.M{"user_id": userID}, findOptions)
}

// List returns a page of entries newest-first, optionally filtered by pillar.
func (s *EntryStore) List(ctx context.Context, userID string, pillar models.Pillar, limit, skip int64) ([]models.JournalEntry, error) {
	filter := bson.M{"user_id": userID}
	if pillar != "" {
		filter["pillar"] = pillar
	}
	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit).
		SetSkip(skip)
	return s.find(ctx, filter, findOptions)
}

// DateRange returns entries whose calendar date falls within [from, to]
// inclusive, ordered oldest-first. Dates are YYYY-MM-DD strings, which sort
// lexicographically in calendar order.
func (s *EntryStore) DateRange(ctx context.Context, userID, from, to string) ([]models.JournalEntry, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	// Sort by creation time within each day so "first entry of the day"
	// is deterministic for consumers that dedupe by date.
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	return s.find(ctx, filter, findOptions)
}

// ByPillar returns up to limit of the user's entries tagged with the pillar,
// newest-first. Used to look up guided-track progress.
func (s *EntryStore) ByPillar(ctx context.Context, userID string, pillar models.Pillar, limit int64) ([]models.JournalEntry, error) {
	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)
	return s.find(ctx, bson.M{"user_id": userID, "pillar": pillar}, findOptions)
}

func (s *EntryStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.JournalEntry, error) {
	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.JournalEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

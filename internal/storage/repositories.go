package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Common repository errors.
var (
	ErrNotFound = errors.New("document not found")
)

// caseInsensitive builds an anchored-nowhere, case-insensitive regex match
// for user-supplied text. Input is quoted so regex metacharacters in a
// message cannot alter the query.
func caseInsensitive(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// TourRepository provides read access to the tour catalog.
type TourRepository struct {
	coll *mongo.Collection
}

// NewTourRepository creates a tour repository bound to the given database.
func NewTourRepository(db *mongo.Database) *TourRepository {
	return &TourRepository{coll: db.Collection(toursCollection)}
}

// Search finds active tours whose name, destination or category matches any
// of the given tokens. Callers pass pre-filtered keyword tokens; an empty
// token list returns no results (use Recent for the browse fallback).
func (r *TourRepository) Search(ctx context.Context, tokens []string, limit int64) ([]Tour, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var clauses []bson.M
	for _, tok := range tokens {
		re := caseInsensitive(tok)
		clauses = append(clauses,
			bson.M{"tur_adi": re},
			bson.M{"destinasyon": re},
			bson.M{"kategori": re},
		)
	}

	filter := bson.M{"aktif": true, "$or": clauses}
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

// Recent returns up to limit active tours in natural order. Used when a
// message carries no usable search keywords.
func (r *TourRepository) Recent(ctx context.Context, limit int64) ([]Tour, error) {
	return r.find(ctx, bson.M{"aktif": true}, options.Find().SetLimit(limit))
}

// TourFilter narrows catalog listings.
type TourFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// List returns active tours matching the filter, cheapest first.
func (r *TourRepository) List(ctx context.Context, f TourFilter) ([]Tour, error) {
	filter := bson.M{"aktif": true}
	if f.Category != "" {
		filter["kategori"] = f.Category
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["fiyat"] = price
	}

	return r.find(ctx, filter, options.Find().SetSort(bson.M{"fiyat": 1}))
}

// Count returns the number of tour documents, active or not.
func (r *TourRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}
	return n, nil
}

// InsertMany adds tours to the catalog. Used by seeding only.
func (r *TourRepository) InsertMany(ctx context.Context, tours []Tour) error {
	if len(tours) == 0 {
		return nil
	}
	docs := make([]interface{}, len(tours))
	for i := range tours {
		docs[i] = tours[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert tours: %w", err)
	}
	return nil
}

func (r *TourRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Tour, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("tour query failed: %w", err)
	}
	var tours []Tour
	if err := cur.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}

// FactRepository provides access to the company fact collection.
type FactRepository struct {
	coll *mongo.Collection
}

// NewFactRepository creates a fact repository bound to the given database.
func NewFactRepository(db *mongo.Database) *FactRepository {
	return &FactRepository{coll: db.Collection(factsCollection)}
}

// TourFacts returns active tour-category facts whose title or content
// mentions the raw message text.
func (r *FactRepository) TourFacts(ctx context.Context, message string, limit int64) ([]Fact, error) {
	re := caseInsensitive(message)
	filter := bson.M{
		"isActive": true,
		"category": "turlar",
		"$or": []bson.M{
			{"title": re},
			{"content": re},
		},
	}
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

// CategoryFacts returns active facts that either belong to the given
// category or whose content mentions the message text.
func (r *FactRepository) CategoryFacts(ctx context.Context, category, message string, limit int64) ([]Fact, error) {
	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"category": category},
			{"content": caseInsensitive(message)},
		},
	}
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

// FactFilter narrows fact listings.
type FactFilter struct {
	Category string
	Search   string
}

// List returns active facts matching the filter, newest first.
func (r *FactRepository) List(ctx context.Context, f FactFilter) ([]Fact, error) {
	filter := bson.M{"isActive": true}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Search != "" {
		re := caseInsensitive(f.Search)
		filter["$or"] = []bson.M{
			{"title": re},
			{"content": re},
		}
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.M{"lastUpdated": -1}))
}

// ReplaceAll atomically-ish swaps the fact collection contents: existing
// documents are removed, then the new set is inserted. A brief read gap is
// acceptable for this dataset.
func (r *FactRepository) ReplaceAll(ctx context.Context, facts []Fact) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear facts: %w", err)
	}
	if len(facts) == 0 {
		return nil
	}
	docs := make([]interface{}, len(facts))
	for i := range facts {
		docs[i] = facts[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert facts: %w", err)
	}
	return nil
}

// Count returns the number of fact documents.
func (r *FactRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count facts: %w", err)
	}
	return n, nil
}

func (r *FactRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Fact, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("fact query failed: %w", err)
	}
	var facts []Fact
	if err := cur.All(ctx, &facts); err != nil {
		return nil, fmt.Errorf("failed to decode facts: %w", err)
	}
	return facts, nil
}

// ChatLogRepository appends conversation exchanges.
type ChatLogRepository struct {
	coll *mongo.Collection
}

// NewChatLogRepository creates a chat log repository bound to the given
// database.
func NewChatLogRepository(db *mongo.Database) *ChatLogRepository {
	return &ChatLogRepository{coll: db.Collection(chatLogCollection)}
}

// Append records a completed exchange.
func (r *ChatLogRepository) Append(ctx context.Context, entry ChatLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append chat log: %w", err)
	}
	return nil
}

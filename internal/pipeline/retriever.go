package pipeline

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// stopWords are fillers and bare query words that carry no search signal.
var stopWords = map[string]struct{}{
	"bana":  {},
	"misin": {},
	"verir": {},
	"var":   {},
	"mi":    {},
	"tur":   {},
	"turu":  {},
}

// Keywords tokenizes a message for tour search: normalized, lower-cased,
// split on whitespace, with short tokens and stop words removed.
func Keywords(message string) []string {
	normalized := Normalize(strings.ToLower(message))
	var tokens []string
	for _, word := range strings.Fields(normalized) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// TourStore is the read side of the tour catalog the retriever depends on.
type TourStore interface {
	Search(ctx context.Context, tokens []string, limit int64) ([]storage.Tour, error)
	Recent(ctx context.Context, limit int64) ([]storage.Tour, error)
}

// FactStore is the read side of the company fact collection.
type FactStore interface {
	TourFacts(ctx context.Context, message string, limit int64) ([]storage.Fact, error)
	CategoryFacts(ctx context.Context, category, message string, limit int64) ([]storage.Fact, error)
}

// RetrievalResult carries the records feeding the context assembler. Facts
// may contain overlap between the tour-specific and category queries; the
// assembler tolerates redundancy.
type RetrievalResult struct {
	Tours []storage.Tour
	Facts []storage.Fact
}

// Retriever fans out bounded lookups against the tour and fact stores.
type Retriever struct {
	tours  TourStore
	facts  FactStore
	cfg    config.RetrievalConfig
	logger *observability.Logger
}

// NewRetriever creates a retrieval engine over the given stores.
func NewRetriever(tours TourStore, facts FactStore, cfg config.RetrievalConfig, logger *observability.Logger) *Retriever {
	return &Retriever{
		tours:  tours,
		facts:  facts,
		cfg:    cfg,
		logger: logger.WithComponent("retriever"),
	}
}

// Retrieve gathers tours and facts relevant to the message. The three
// branches run concurrently as independent reads; a failing branch degrades
// to an empty result and never aborts the request.
func (r *Retriever) Retrieve(ctx context.Context, message, category string) RetrievalResult {
	wantTours := category == CategoryTour || strings.Contains(strings.ToLower(message), "tur")

	var (
		wg        sync.WaitGroup
		tours     []storage.Tour
		tourFacts []storage.Fact
		catFacts  []storage.Fact
	)

	if wantTours {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tours = r.searchTours(ctx, message)
		}()
		go func() {
			defer wg.Done()
			var err error
			tourFacts, err = r.facts.TourFacts(ctx, message, int64(r.cfg.MaxTourFacts))
			if err != nil {
				r.logger.Warn().Err(err).Msg("Tour fact query failed")
				tourFacts = nil
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		catFacts, err = r.facts.CategoryFacts(ctx, category, message, int64(r.cfg.MaxGeneralFacts))
		if err != nil {
			r.logger.Warn().Err(err).Msg("Category fact query failed")
			catFacts = nil
		}
	}()

	wg.Wait()

	return RetrievalResult{
		Tours: tours,
		Facts: append(tourFacts, catFacts...),
	}
}

// searchTours runs the keyword search, falling back to a bounded browse
// list when the message carries no usable keywords.
func (r *Retriever) searchTours(ctx context.Context, message string) []storage.Tour {
	tokens := Keywords(message)

	var (
		tours []storage.Tour
		err   error
	)
	if len(tokens) == 0 {
		tours, err = r.tours.Recent(ctx, int64(r.cfg.MaxTours))
	} else {
		tours, err = r.tours.Search(ctx, tokens, int64(r.cfg.MaxTours))
	}
	if err != nil {
		r.logger.Warn().Err(err).Strs("tokens", tokens).Msg("Tour search failed")
		return nil
	}

	r.logger.Debug().Int("count", len(tours)).Strs("tokens", tokens).Msg("Tour search completed")
	return tours
}

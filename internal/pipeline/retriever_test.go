package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

func newTestRetriever(tours TourStore, facts FactStore) *Retriever {
	return NewRetriever(tours, facts, config.DefaultConfig().Retrieval, observability.Nop())
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		message  string
		expected []string
	}{
		{"Kapadokya turuna gitmek istiyorum", []string{"kapadokya", "turuna", "gitmek", "istiyorum"}},
		{"tur var mı", nil},
		{"bana tur verir misin", nil},
		{"Pamukkale", []string{"pamukkale"}},
		{"ve de mi", nil},
		{"", nil},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.expected, Keywords(tc.message))
		})
	}
}

func TestRetriever_TourQuery(t *testing.T) {
	tourStore := &fakeTourStore{searchTours: []storage.Tour{{Name: "Kapadokya Turu"}}}
	factStore := &fakeFactStore{
		tourFacts: []storage.Fact{{Title: "GAP Turu"}},
		catFacts:  []storage.Fact{{Title: "Tur Kategorileri"}},
	}
	r := newTestRetriever(tourStore, factStore)

	result := r.Retrieve(context.Background(), "Kapadokya turuna gitmek istiyorum", CategoryTour)

	assert.Len(t, result.Tours, 1)
	assert.Len(t, result.Facts, 2)
	if assert.Len(t, tourStore.searchCalls, 1) {
		assert.Contains(t, tourStore.searchCalls[0], "kapadokya")
	}
	assert.Equal(t, 1, factStore.tourCalls)
	assert.Equal(t, []string{CategoryTour}, factStore.catCalls)
}

func TestRetriever_NonTourCategorySkipsTourStore(t *testing.T) {
	tourStore := &fakeTourStore{}
	factStore := &fakeFactStore{catFacts: []storage.Fact{{Title: "İletişim Bilgileri"}}}
	r := newTestRetriever(tourStore, factStore)

	result := r.Retrieve(context.Background(), "telefon numaranız nedir", CategoryContact)

	assert.Empty(t, result.Tours)
	assert.Len(t, result.Facts, 1)
	assert.Empty(t, tourStore.searchCalls)
	assert.Zero(t, tourStore.recentCalls)
	assert.Zero(t, factStore.tourCalls)
}

func TestRetriever_StopWordFallbackBrowses(t *testing.T) {
	tourStore := &fakeTourStore{recentTours: []storage.Tour{
		{Name: "Kapadokya Turu"},
		{Name: "GAP Turu"},
	}}
	factStore := &fakeFactStore{}
	r := newTestRetriever(tourStore, factStore)

	// Only stop words remain after tokenization, so retrieval falls back to
	// the browse list instead of returning nothing.
	result := r.Retrieve(context.Background(), "tur var mı", CategoryTour)

	assert.NotEmpty(t, result.Tours)
	assert.Equal(t, 1, tourStore.recentCalls)
	assert.Empty(t, tourStore.searchCalls)
}

func TestRetriever_StoreFailuresDegrade(t *testing.T) {
	tourStore := &fakeTourStore{searchErr: errors.New("connection reset")}
	factStore := &fakeFactStore{
		tourErr: errors.New("connection reset"),
		catErr:  errors.New("connection reset"),
	}
	r := newTestRetriever(tourStore, factStore)

	result := r.Retrieve(context.Background(), "Kapadokya turu fiyatları", CategoryTour)

	assert.Empty(t, result.Tours)
	assert.Empty(t, result.Facts)
}

func TestRetriever_MessageMentioningTourTriggersSearch(t *testing.T) {
	tourStore := &fakeTourStore{searchTours: []storage.Tour{{Name: "Salda Gölü Turu"}}}
	factStore := &fakeFactStore{}
	r := newTestRetriever(tourStore, factStore)

	// Category resolved to price, but the raw message mentions tours.
	result := r.Retrieve(context.Background(), "Salda turlarının fiyatı ne kadar", CategoryPrice)

	assert.Len(t, result.Tours, 1)
	assert.Len(t, tourStore.searchCalls, 1)
	assert.Equal(t, 1, factStore.tourCalls)
}

package pipeline

import (
	"context"
	"sync"

	"github.com/voyago-ai/concierge-engine/internal/company"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// fakeCompleter replays scripted responses in call order. failOn fails the
// n-th call (1-based); zero disables failure injection.
type fakeCompleter struct {
	mu        sync.Mutex
	responses []string
	failOn    int
	err       error
	calls     int
	requests  []llm.CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.requests = append(f.requests, req)
	if f.failOn == f.calls {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

type fakeTourStore struct {
	mu          sync.Mutex
	searchTours []storage.Tour
	recentTours []storage.Tour
	searchErr   error
	recentErr   error
	searchCalls [][]string
	recentCalls int
}

func (f *fakeTourStore) Search(ctx context.Context, tokens []string, limit int64) ([]storage.Tour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, tokens)
	return f.searchTours, f.searchErr
}

func (f *fakeTourStore) Recent(ctx context.Context, limit int64) ([]storage.Tour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentCalls++
	return f.recentTours, f.recentErr
}

type fakeFactStore struct {
	mu        sync.Mutex
	tourFacts []storage.Fact
	catFacts  []storage.Fact
	tourErr   error
	catErr    error
	tourCalls int
	catCalls  []string
}

func (f *fakeFactStore) TourFacts(ctx context.Context, message string, limit int64) ([]storage.Fact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tourCalls++
	return f.tourFacts, f.tourErr
}

func (f *fakeFactStore) CategoryFacts(ctx context.Context, category, message string, limit int64) ([]storage.Fact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catCalls = append(f.catCalls, category)
	return f.catFacts, f.catErr
}

type fakeChatLog struct {
	mu      sync.Mutex
	entries []storage.ChatLogEntry
	err     error
}

func (f *fakeChatLog) Append(ctx context.Context, entry storage.ChatLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func newTestService(completer llm.Client, tours TourStore, facts FactStore, chatLog ChatLog) *Service {
	logger := observability.Nop()
	cfg := config.DefaultConfig()
	return NewService(
		NewClassifier(completer, cfg.Completion, logger),
		NewRetriever(tours, facts, cfg.Retrieval, logger),
		completer,
		chatLog,
		nil,
		company.DefaultProfile(),
		cfg.Completion,
		cfg.Retrieval,
		logger,
	)
}

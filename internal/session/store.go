// Package session keeps short per-session conversation history so clients
// that do not send history still get contextual answers.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
)

const sessionPrefix = "session:"

// Store loads and records conversation history keyed by session ID.
type Store interface {
	History(ctx context.Context, sessionID string) ([]llm.Message, error)
	Append(ctx context.Context, sessionID, userMsg, assistantMsg string) error
}

// NewStore builds a store from config. An unknown driver falls back to the
// in-memory store.
func NewStore(cfg config.SessionConfig) Store {
	if cfg.Driver == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		return &redisStore{rdb: rdb, ttl: cfg.TTL, maxTurns: cfg.MaxTurns}
	}
	return NewMemoryStore(cfg.TTL, cfg.MaxTurns)
}

type redisStore struct {
	rdb      *redis.Client
	ttl      time.Duration
	maxTurns int
}

// NewRedisStore wraps an existing redis client as a session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration, maxTurns int) Store {
	return &redisStore{rdb: rdb, ttl: ttl, maxTurns: maxTurns}
}

func (s *redisStore) History(ctx context.Context, sessionID string) ([]llm.Message, error) {
	data, err := s.rdb.Get(ctx, sessionPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var history []llm.Message
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return history, nil
}

func (s *redisStore) Append(ctx context.Context, sessionID, userMsg, assistantMsg string) error {
	history, err := s.History(ctx, sessionID)
	if err != nil {
		return err
	}

	history = append(history,
		llm.Message{Role: llm.RoleUser, Content: userMsg},
		llm.Message{Role: llm.RoleAssistant, Content: assistantMsg},
	)
	history = trim(history, s.maxTurns)

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// trim keeps only the most recent maxTurns exchanges (a turn is a user plus
// assistant message pair).
func trim(history []llm.Message, maxTurns int) []llm.Message {
	if maxTurns <= 0 {
		return history
	}
	limit := maxTurns * 2
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history
}

type memoryEntry struct {
	history  []llm.Message
	expireAt time.Time
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	maxTurns int
}

// NewMemoryStore returns a process-local session store. Suitable for tests
// and single-instance deployments.
func NewMemoryStore(ttl time.Duration, maxTurns int) Store {
	return &memoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		maxTurns: maxTurns,
	}
}

func (s *memoryStore) History(ctx context.Context, sessionID string) ([]llm.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expireAt) {
		delete(s.sessions, sessionID)
		return nil, nil
	}

	out := make([]llm.Message, len(entry.history))
	copy(out, entry.history)
	return out, nil
}

func (s *memoryStore) Append(ctx context.Context, sessionID, userMsg, assistantMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || time.Now().After(entry.expireAt) {
		entry = &memoryEntry{}
		s.sessions[sessionID] = entry
	}

	entry.history = append(entry.history,
		llm.Message{Role: llm.RoleUser, Content: userMsg},
		llm.Message{Role: llm.RoleAssistant, Content: assistantMsg},
	)
	entry.history = trim(entry.history, s.maxTurns)
	entry.expireAt = time.Now().Add(s.ttl)
	return nil
}

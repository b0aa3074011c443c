package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
)

func TestMemoryStore_AppendAndHistory(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10)
	ctx := context.Background()

	history, err := store.History(ctx, "s-1")
	assert.NoError(t, err)
	assert.Empty(t, history)

	assert.NoError(t, store.Append(ctx, "s-1", "merhaba", "Sayın misafirimiz, hoş geldiniz."))

	history, err = store.History(ctx, "s-1")
	assert.NoError(t, err)
	if assert.Len(t, history, 2) {
		assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "merhaba"}, history[0])
		assert.Equal(t, llm.RoleAssistant, history[1].Role)
	}

	// Sessions are isolated.
	other, err := store.History(ctx, "s-2")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryStore_TrimsToMaxTurns(t *testing.T) {
	store := NewMemoryStore(time.Hour, 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.NoError(t, store.Append(ctx, "s-1", "soru", "cevap"))
	}

	history, err := store.History(ctx, "s-1")
	assert.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond, 10)
	ctx := context.Background()

	assert.NoError(t, store.Append(ctx, "s-1", "soru", "cevap"))
	time.Sleep(5 * time.Millisecond)

	history, err := store.History(ctx, "s-1")
	assert.NoError(t, err)
	assert.Empty(t, history)
}

func TestNewStore_DefaultsToMemory(t *testing.T) {
	cfg := config.DefaultConfig().Session
	cfg.Driver = "memory"

	store := NewStore(cfg)

	_, ok := store.(*memoryStore)
	assert.True(t, ok)
}

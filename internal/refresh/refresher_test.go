package refresh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago-ai/concierge-engine/internal/company"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

type fakeFactWriter struct {
	replaced [][]storage.Fact
	err      error
}

func (f *fakeFactWriter) ReplaceAll(ctx context.Context, facts []storage.Fact) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = append(f.replaced, facts)
	return nil
}

func TestRefresher_RunOnce(t *testing.T) {
	writer := &fakeFactWriter{}
	r := NewRefresher(writer, company.DefaultProfile(), config.DefaultConfig().Refresh, observability.Nop())

	err := r.RunOnce(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, writer.replaced, 1) {
		assert.NotEmpty(t, writer.replaced[0])
		for _, fact := range writer.replaced[0] {
			assert.NotEmpty(t, fact.Title)
			assert.NotEmpty(t, fact.Category)
			assert.True(t, fact.Active)
		}
	}
}

func TestRefresher_RunOnce_WriterFailure(t *testing.T) {
	writer := &fakeFactWriter{err: errors.New("deadline exceeded")}
	r := NewRefresher(writer, company.DefaultProfile(), config.DefaultConfig().Refresh, observability.Nop())

	assert.Error(t, r.RunOnce(context.Background()))
}

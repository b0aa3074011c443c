// Package refresh periodically repopulates the fact collection from the
// curated company dataset.
package refresh

import (
	"context"
	"time"

	"github.com/voyago-ai/concierge-engine/internal/company"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// FactWriter is the write side of the fact store the refresher needs.
type FactWriter interface {
	ReplaceAll(ctx context.Context, facts []storage.Fact) error
}

// Refresher bulk-replaces company facts on a fixed interval.
type Refresher struct {
	facts   FactWriter
	profile company.Profile
	cfg     config.RefreshConfig
	logger  *observability.Logger
}

// NewRefresher creates a fact refresher.
func NewRefresher(facts FactWriter, profile company.Profile, cfg config.RefreshConfig, logger *observability.Logger) *Refresher {
	if cfg.Interval == 0 {
		cfg.Interval = 24 * time.Hour
	}
	return &Refresher{
		facts:   facts,
		profile: profile,
		cfg:     cfg,
		logger:  logger.WithComponent("refresh"),
	}
}

// RunOnce replaces the fact collection with the current dataset.
func (r *Refresher) RunOnce(ctx context.Context) error {
	facts := company.Facts(r.profile)
	if err := r.facts.ReplaceAll(ctx, facts); err != nil {
		r.logger.Error().Err(err).Msg("Fact refresh failed")
		return err
	}
	r.logger.Info().Int("facts", len(facts)).Msg("Fact collection refreshed")
	return nil
}

// Start launches the refresh loop: one run after the initial delay, then
// one per interval, until the context is cancelled. Individual run failures
// are logged and the loop continues.
func (r *Refresher) Start(ctx context.Context) {
	go func() {
		if r.cfg.InitialDelay > 0 {
			select {
			case <-time.After(r.cfg.InitialDelay):
			case <-ctx.Done():
				return
			}
		}
		_ = r.RunOnce(ctx)

		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = r.RunOnce(ctx)
			case <-ctx.Done():
				r.logger.Info().Msg("Fact refresh loop stopped")
				return
			}
		}
	}()
}

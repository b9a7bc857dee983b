package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/easel/internal/artic"
	"github.com/five82/easel/internal/state"
)

const (
	defaultRetryBase = 2 * time.Second
	maxBackoff       = 30 * time.Second
)

// Loader fetches pages into the page store, retrying transient failures.
type Loader struct {
	fetcher   artic.PageFetcher
	store     *state.Store
	log       zerolog.Logger
	attempts  int
	retryBase time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

// LoaderOptions tunes NewLoader. Zero values use defaults.
type LoaderOptions struct {
	Attempts  int
	RetryBase time.Duration
}

// NewLoader wires a fetcher to store.
func NewLoader(fetcher artic.PageFetcher, store *state.Store, log zerolog.Logger, opts LoaderOptions) *Loader {
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	base := opts.RetryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	return &Loader{
		fetcher:   fetcher,
		store:     store,
		log:       log,
		attempts:  attempts,
		retryBase: base,
		sleep:     sleepContext,
	}
}

// Request marks page as wanted in the store. Call it on the UI loop before
// starting Load so stale results are dropped.
func (l *Loader) Request(page int) {
	l.store.Request(page)
}

// Load fetches page and writes the outcome to the store. It returns the error
// of the last attempt, if all failed.
func (l *Loader) Load(ctx context.Context, page int) error {
	var lastErr error
	for attempt := 0; attempt < l.attempts; attempt++ {
		if attempt > 0 {
			delay := calculateBackoff(attempt-1, l.retryBase)
			l.log.Debug().Int("page", page).Int("attempt", attempt+1).Dur("delay", delay).Msg("retrying page fetch")
			if err := l.sleep(ctx, delay); err != nil {
				lastErr = err
				break
			}
		}

		result, err := l.fetcher.FetchPage(ctx, page)
		if err == nil {
			if !l.store.Update(page, result.Records, result.Meta(), nil) {
				l.log.Debug().Int("page", page).Msg("dropped stale page")
			}
			l.log.Debug().Int("page", page).Int("records", len(result.Records)).Msg("page fetched")
			return nil
		}
		lastErr = err
		l.log.Warn().Err(err).Int("page", page).Int("attempt", attempt+1).Msg("page fetch failed")
		if ctx.Err() != nil {
			break
		}
	}

	l.store.Update(page, nil, l.store.Snapshot().Meta, lastErr)
	return lastErr
}

// calculateBackoff doubles base per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

// RetryDelay is the wait before the UI refetches a page that failed failures
// times in a row.
func RetryDelay(failures int) time.Duration {
	return calculateBackoff(failures-1, defaultRetryBase)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/easel/internal/artic"
	"github.com/five82/easel/internal/selection"
)

// Snapshot is the currently displayed page as the UI sees it.
type Snapshot struct {
	Page                int // requested page, 1-based
	Records             []artic.Artwork
	Meta                selection.Meta
	HasMeta             bool
	Revision            uint64 // bumps on every delivered fetch result
	Loading             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when fetches have failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// PageData converts the snapshot into the selection core's page view.
func (s Snapshot) PageData() selection.PageData {
	return selection.PageData{
		Number:   s.Page,
		Records:  artic.RecordIDs(s.Records),
		Revision: s.Revision,
	}
}

// Store holds exactly one page: whichever page was requested last. Results for
// any other page are dropped.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Request marks page as the one the UI wants. Records of the previous page are
// discarded; pagination metadata is kept so page bounds stay known.
func (s *Store) Request(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Page = page
	s.snapshot.Records = nil
	s.snapshot.Loading = true
}

// Update records the outcome of fetching page and reports whether it was
// accepted. On error the page has no records but the previous metadata stays.
func (s *Store) Update(page int, records []artic.Artwork, meta selection.Meta, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page != s.snapshot.Page {
		return false
	}

	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Revision++

	if err != nil {
		s.snapshot.Records = nil
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return true
	}

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Meta = meta
	s.snapshot.HasMeta = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []artic.Artwork) []artic.Artwork {
	if len(records) == 0 {
		return nil
	}
	dup := make([]artic.Artwork, len(records))
	copy(dup, records)
	return dup
}

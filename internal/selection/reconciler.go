package selection

import "github.com/rs/zerolog"

// PageData is the currently loaded page as the selection core sees it.
// Revision must change whenever a new fetch result is delivered, even for the
// same page number.
type PageData struct {
	Number   int
	Records  []RecordID
	Revision uint64
}

type observation struct {
	page         int
	pageRevision uint64
	planRevision uint64
}

// Reconciler commits planned allocations when their page is on screen. It
// watches page data and the plan as one combined input: a commit happens for
// the first observation where both the page's records and its plan entry are
// present, regardless of which arrived last.
type Reconciler struct {
	store *Store
	log   zerolog.Logger

	last observation
	seen bool
}

// NewReconciler builds a reconciler for store.
func NewReconciler(store *Store, log zerolog.Logger) *Reconciler {
	return &Reconciler{store: store, log: log}
}

// Observe evaluates the current (page, plan) pair and reports whether a commit
// happened. Repeated calls with an unchanged pair return immediately.
func (r *Reconciler) Observe(page PageData) bool {
	if r == nil || r.store == nil {
		return false
	}
	key := observation{
		page:         page.Number,
		pageRevision: page.Revision,
		planRevision: r.store.PlanRevision(),
	}
	if r.seen && key == r.last {
		return false
	}
	r.last = key
	r.seen = true

	count, ok := r.store.PlannedCount(page.Number)
	if !ok {
		return false
	}
	if len(page.Records) == 0 {
		return false
	}

	r.store.CommitPageAllocation(page.Number, page.Records, count)
	// The commit changed the plan revision; remember it so the follow-up
	// observation of the same page is a no-op without re-reading the plan.
	r.last.planRevision = r.store.PlanRevision()

	r.log.Debug().
		Int("page", page.Number).
		Int("count", min(count, len(page.Records))).
		Int("pending", r.store.PendingCount()).
		Msg("committed planned selection")
	return true
}

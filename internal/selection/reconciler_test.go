package selection

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReconciler(s *Store) *Reconciler {
	return NewReconciler(s, zerolog.Nop())
}

func TestReconciler_VisitsPagesInTurn(t *testing.T) {
	s := NewStore()
	r := newReconciler(s)
	meta := Meta{Total: 36, Limit: 12}

	NewView(s).SelectCount(20, meta)
	require.Equal(t, []Allocation{{1, 12}, {2, 8}}, s.Plan().Allocations())

	page1 := pageIDs(1, 12)
	assert.True(t, r.Observe(PageData{Number: 1, Records: page1, Revision: 1}))
	assert.Equal(t, 12, s.CommittedCount())
	_, ok := s.PlannedCount(1)
	assert.False(t, ok)

	page2 := pageIDs(2, 12)
	assert.True(t, r.Observe(PageData{Number: 2, Records: page2, Revision: 2}))
	assert.Equal(t, page2[:8], NewView(s).VisibleSelected(page2))
	assert.Equal(t, 20, s.TotalSelectedCount())
	assert.True(t, s.Plan().IsEmpty())
}

func TestReconciler_CapsAtCollectionSize(t *testing.T) {
	s := NewStore()
	r := newReconciler(s)

	NewView(s).SelectCount(50, Meta{Total: 36, Limit: 12})
	require.Equal(t, 36, s.PendingCount())

	for page := 1; page <= 3; page++ {
		r.Observe(PageData{Number: page, Records: pageIDs(page, 12), Revision: uint64(page)})
	}

	assert.Equal(t, 36, s.CommittedCount())
	assert.Equal(t, 36, s.TotalSelectedCount())
}

func TestReconciler_PlanAdoptedWhilePageLoaded(t *testing.T) {
	s := NewStore()
	r := newReconciler(s)
	page := PageData{Number: 1, Records: pageIDs(1, 12), Revision: 7}

	assert.False(t, r.Observe(page))

	NewView(s).SelectCount(20, Meta{Total: 36, Limit: 12})
	assert.True(t, r.Observe(page), "same page data with a new plan must commit")
	assert.Equal(t, 12, s.CommittedCount())
	assert.Equal(t, 8, s.PendingCount())
}

func TestReconciler_WaitsForRecords(t *testing.T) {
	s := NewStore()
	r := newReconciler(s)
	NewView(s).SelectCount(5, Meta{Total: 36, Limit: 12})

	assert.False(t, r.Observe(PageData{Number: 1, Revision: 1}))
	_, ok := s.PlannedCount(1)
	assert.True(t, ok, "failed or empty fetch must leave the plan entry")

	assert.True(t, r.Observe(PageData{Number: 1, Records: pageIDs(1, 12), Revision: 2}))
	assert.Equal(t, 5, s.CommittedCount())
}

func TestReconciler_RepeatObservationIsNoop(t *testing.T) {
	s := NewStore()
	r := newReconciler(s)
	NewView(s).SelectCount(3, Meta{Total: 36, Limit: 12})
	page := PageData{Number: 1, Records: pageIDs(1, 12), Revision: 1}

	require.True(t, r.Observe(page))

	// User deselects one of the committed rows; a re-render must not re-add it.
	NewView(s).ApplyGridSelection(1, page.Records, page.Records[:2])
	assert.False(t, r.Observe(page))
	assert.False(t, r.Observe(PageData{Number: 1, Records: page.Records, Revision: 2}))
	assert.Equal(t, 2, s.CommittedCount())
}

func TestReconciler_NilSafe(t *testing.T) {
	var r *Reconciler
	assert.False(t, r.Observe(PageData{Number: 1}))
}

package selection

import "sort"

// Store owns the selected set and the pending plan. It is not safe for
// concurrent use; the UI update loop is its only caller.
type Store struct {
	selected     map[RecordID]struct{}
	plan         Plan
	planRevision uint64
}

// NewStore returns a store with nothing selected and nothing planned.
func NewStore() *Store {
	return &Store{selected: make(map[RecordID]struct{})}
}

// AdoptPlan replaces the pending plan wholesale. Unvisited allocations of the
// previous plan are dropped. The selected set is not touched.
func (s *Store) AdoptPlan(p Plan) {
	s.plan = p.clone()
	s.planRevision++
}

// CommitPageAllocation selects the first count records of page in the given
// order and removes page from the plan. Pages absent from the plan are left
// alone, so repeated commits are harmless.
func (s *Store) CommitPageAllocation(page int, records []RecordID, count int) {
	if _, ok := s.plan.Count(page); !ok {
		return
	}
	count = min(max(count, 0), len(records))
	for _, id := range records[:count] {
		s.selected[id] = struct{}{}
	}
	s.plan.remove(page)
	s.planRevision++
}

// ReplacePageSelection makes the selection of records equal to selected.
// Every id on records that is not in selected is dropped first, then the ids
// of selected are added. Ids that are not on records are ignored, and ids of
// other pages are never touched.
func (s *Store) ReplacePageSelection(page int, records []RecordID, selected []RecordID) {
	_ = page

	onPage := make(map[RecordID]struct{}, len(records))
	for _, id := range records {
		onPage[id] = struct{}{}
		delete(s.selected, id)
	}
	for _, id := range selected {
		if _, ok := onPage[id]; ok {
			s.selected[id] = struct{}{}
		}
	}
}

// Clear drops every selection and the pending plan.
func (s *Store) Clear() {
	clear(s.selected)
	s.plan = Plan{}
	s.planRevision++
}

// TotalSelectedCount is what the user has asked for so far: committed
// selections plus allocations still waiting for their page.
func (s *Store) TotalSelectedCount() int {
	return len(s.selected) + s.plan.Pending()
}

// CommittedCount returns the size of the selected set.
func (s *Store) CommittedCount() int { return len(s.selected) }

// PendingCount returns the sum of planned counts not yet committed.
func (s *Store) PendingCount() int { return s.plan.Pending() }

// IsSelected reports whether id is in the selected set.
func (s *Store) IsSelected(id RecordID) bool {
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected ids in ascending order.
func (s *Store) Selected() []RecordID {
	ids := make([]RecordID, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PlannedCount returns the pending allocation for page, if any.
func (s *Store) PlannedCount(page int) (int, bool) {
	return s.plan.Count(page)
}

// Plan returns a copy of the pending plan.
func (s *Store) Plan() Plan { return s.plan.clone() }

// PlanRevision changes every time the plan changes.
func (s *Store) PlanRevision() uint64 { return s.planRevision }

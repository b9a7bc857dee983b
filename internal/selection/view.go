package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCount is returned by ParseCount for empty, non-numeric or
// non-positive input.
var ErrInvalidCount = errors.New("count must be a positive whole number")

// ParseCount validates raw "select N" input.
func ParseCount(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidCount)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, trimmed)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return n, nil
}

// View derives what the grid shows from the store and translates grid
// gestures back into store mutations. It holds no state of its own.
type View struct {
	store *Store
}

// NewView wraps store.
func NewView(store *Store) View {
	return View{store: store}
}

// VisibleSelected returns the records of the current page that are selected,
// in page order.
func (v View) VisibleSelected(records []RecordID) []RecordID {
	var out []RecordID
	for _, id := range records {
		if v.store.IsSelected(id) {
			out = append(out, id)
		}
	}
	return out
}

// IsChecked reports whether the row for id should render as checked.
func (v View) IsChecked(id RecordID) bool {
	return v.store.IsSelected(id)
}

// ApplyGridSelection takes the grid's full resulting selection for the
// rendered page, not a delta.
func (v View) ApplyGridSelection(page int, records []RecordID, subset []RecordID) {
	v.store.ReplacePageSelection(page, records, subset)
}

// SelectCount plans a selection of n records over the pages described by meta
// and adopts it. The returned plan is the one now pending.
func (v View) SelectCount(n int, meta Meta) Plan {
	if n <= 0 {
		return v.store.Plan()
	}
	plan := BuildPlan(n, meta.TotalPages(), meta.Limit)
	v.store.AdoptPlan(plan)
	return plan
}

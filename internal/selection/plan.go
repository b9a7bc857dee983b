package selection

// RecordID identifies one artwork record. It is stable across fetches.
type RecordID int

// Allocation asks for the first Count records of Page to be selected.
type Allocation struct {
	Page  int
	Count int
}

// Plan is an ordered page->count allocation waiting for its pages to arrive.
// Pages are unique, 1-based and in increasing order; every count is positive.
type Plan struct {
	allocs []Allocation
}

// BuildPlan spreads n selections across pages of pageSize records, first page
// first, until n is exhausted or pages run out. Requests larger than
// totalPages*pageSize are capped. Non-positive arguments yield an empty plan.
func BuildPlan(n, totalPages, pageSize int) Plan {
	if n <= 0 || totalPages <= 0 || pageSize <= 0 {
		return Plan{}
	}

	var allocs []Allocation
	remaining := n
	for page := 1; remaining > 0 && page <= totalPages; page++ {
		take := min(pageSize, remaining)
		allocs = append(allocs, Allocation{Page: page, Count: take})
		remaining -= take
	}
	return Plan{allocs: allocs}
}

// Count returns the planned count for page.
func (p Plan) Count(page int) (int, bool) {
	for _, a := range p.allocs {
		if a.Page == page {
			return a.Count, true
		}
	}
	return 0, false
}

// Len returns the number of pages still planned.
func (p Plan) Len() int { return len(p.allocs) }

// IsEmpty reports whether nothing is pending.
func (p Plan) IsEmpty() bool { return len(p.allocs) == 0 }

// Pending returns the sum of all planned counts.
func (p Plan) Pending() int {
	total := 0
	for _, a := range p.allocs {
		total += a.Count
	}
	return total
}

// Allocations returns a copy of the plan entries in page order.
func (p Plan) Allocations() []Allocation {
	if len(p.allocs) == 0 {
		return nil
	}
	out := make([]Allocation, len(p.allocs))
	copy(out, p.allocs)
	return out
}

func (p Plan) clone() Plan {
	return Plan{allocs: p.Allocations()}
}

func (p *Plan) remove(page int) bool {
	for i, a := range p.allocs {
		if a.Page == page {
			p.allocs = append(p.allocs[:i:i], p.allocs[i+1:]...)
			return true
		}
	}
	return false
}

// Meta carries the source's pagination convention: Total records overall and
// Limit records per page.
type Meta struct {
	Total int
	Limit int
}

// TotalPages returns ceil(Total/Limit), or zero when Limit is unusable.
func (m Meta) TotalPages() int {
	if m.Limit <= 0 || m.Total <= 0 {
		return 0
	}
	return (m.Total + m.Limit - 1) / m.Limit
}

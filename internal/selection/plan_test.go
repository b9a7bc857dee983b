package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_SplitsAcrossPages(t *testing.T) {
	plan := BuildPlan(20, 3, 12)

	assert.Equal(t, []Allocation{{Page: 1, Count: 12}, {Page: 2, Count: 8}}, plan.Allocations())
	assert.Equal(t, 20, plan.Pending())
	assert.Equal(t, 2, plan.Len())
}

func TestBuildPlan_CapsAtCapacity(t *testing.T) {
	plan := BuildPlan(50, 3, 12)

	assert.Equal(t, []Allocation{{Page: 1, Count: 12}, {Page: 2, Count: 12}, {Page: 3, Count: 12}}, plan.Allocations())
	assert.Equal(t, 36, plan.Pending())
}

func TestBuildPlan_RejectsNonPositiveArguments(t *testing.T) {
	tests := []struct {
		name                   string
		n, totalPages, pageLen int
	}{
		{"zero n", 0, 3, 12},
		{"negative n", -4, 3, 12},
		{"no pages", 5, 0, 12},
		{"zero page size", 5, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(tt.n, tt.totalPages, tt.pageLen)
			assert.True(t, plan.IsEmpty())
			assert.Zero(t, plan.Pending())
		})
	}
}

func TestBuildPlan_Properties(t *testing.T) {
	for n := 1; n <= 60; n++ {
		for totalPages := 1; totalPages <= 6; totalPages++ {
			for pageSize := 1; pageSize <= 13; pageSize += 3 {
				plan := BuildPlan(n, totalPages, pageSize)
				allocs := plan.Allocations()

				require.Equal(t, min(n, totalPages*pageSize), plan.Pending(),
					"n=%d pages=%d size=%d", n, totalPages, pageSize)
				for i, a := range allocs {
					require.Equal(t, i+1, a.Page, "pages must start at 1 and increase by one")
					require.Positive(t, a.Count)
					require.LessOrEqual(t, a.Count, pageSize)
					if i < len(allocs)-1 {
						require.Equal(t, pageSize, a.Count, "only the last page may be partial")
					}
				}
				require.LessOrEqual(t, len(allocs), totalPages)
			}
		}
	}
}

func TestPlan_CountAndAllocationsAreCopies(t *testing.T) {
	plan := BuildPlan(15, 2, 10)

	count, ok := plan.Count(2)
	assert.True(t, ok)
	assert.Equal(t, 5, count)

	_, ok = plan.Count(3)
	assert.False(t, ok)

	allocs := plan.Allocations()
	allocs[0].Count = 99
	count, _ = plan.Count(1)
	assert.Equal(t, 10, count)
}

func TestMeta_TotalPages(t *testing.T) {
	assert.Equal(t, 3, Meta{Total: 36, Limit: 12}.TotalPages())
	assert.Equal(t, 4, Meta{Total: 37, Limit: 12}.TotalPages())
	assert.Equal(t, 1, Meta{Total: 1, Limit: 12}.TotalPages())
	assert.Zero(t, Meta{Total: 0, Limit: 12}.TotalPages())
	assert.Zero(t, Meta{Total: 10, Limit: 0}.TotalPages())
}

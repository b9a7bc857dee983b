// Package selection keeps a cross-page selection of artwork records while only
// one page of records is ever loaded.
//
// # Overview
//
// The user can select rows two ways: by toggling rows on the visible page, or
// by asking for "the first N records" which usually spans several pages. The
// second form cannot be applied immediately because the records of pages that
// have not been fetched are unknown. Instead a Plan is built and applied page
// by page as each page arrives.
//
// # Components
//
//   - BuildPlan: pure allocation of N over pages of a fixed size
//   - Store: the selected set plus the pending Plan; the only writer of both
//   - Reconciler: commits a page's planned allocation once that page's records
//     are on screen
//   - View: derives checked rows for the grid and turns grid gestures into
//     Store mutations
//
// # Data Flow
//
//	"select 20" ──> View.SelectCount ──> BuildPlan ──> Store.AdoptPlan
//	                                                       │
//	page arrives ──> Reconciler.Observe(page, plan rev) ───┘
//	                       │
//	                       └──> Store.CommitPageAllocation (page leaves plan)
//
// The count shown to the user is Store.TotalSelectedCount: committed ids plus
// allocations still pending for pages not yet visited.
//
// # Concurrency
//
// Nothing here locks. All calls come from the Bubble Tea update loop, which
// runs on a single goroutine.
//
// # Policy
//
// Adopting a new plan discards whatever the previous plan had not committed.
// Requests larger than the collection are capped silently.
package selection

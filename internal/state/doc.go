// Package state holds the one page of artworks currently on screen.
//
// # Overview
//
// Page fetches run on tea.Cmd goroutines while the UI renders on the Bubble
// Tea loop. Store is the hand-off point between them:
//
//	Fetch goroutine:                UI loop:
//	┌───────────────────┐          ┌──────────────────────┐
//	│ client.FetchPage  │          │ store.Request(page)  │
//	│        ↓          │          │          ↓           │
//	│ store.Update(...) │─────────→│ store.Snapshot()     │
//	└───────────────────┘ (mutex)  │          ↓           │
//	                               │ reconcile + render   │
//	                               └──────────────────────┘
//
// # Single Page
//
// Only the most recently requested page is kept. Request discards the old
// page's records, and Update ignores results for any page other than the one
// requested, so a slow response for page 2 cannot overwrite page 3 after the
// user has moved on.
//
// # Update Semantics
//
//	store.Update(page, records, meta, nil)
//	→ Records = records, Meta = meta, LastError = nil, failures reset
//
//	store.Update(page, nil, _, err)
//	→ Records = nil ("no data for this page"), Meta kept, LastError = err,
//	  ConsecutiveFailures++
//
// Both paths bump Revision, which the selection reconciler uses to tell two
// deliveries of the same page apart.
//
// # Offline Detection
//
// Snapshot.IsOffline reports two or more consecutive failures; the header
// switches to an offline banner and the UI keeps retrying with backoff.
package state

// Package ui is easel's Bubble Tea interface: a paged grid of artworks with
// a checkbox per row.
//
// # Layout
//
//	┌ header: easel · Showing 13-24 of 120 · 30 selected (12 committed, 18 pending) ┐
//	│ Page 2 of 10                                                                   │
//	│     Title            Place of Origin  Artist          Inscriptions  Start  End │
//	│ [x] Water Lilies     France           Claude Monet    ...           1906   1906│
//	│ [ ] ...                                                                        │
//	└ footer: 2/10  Space:Toggle  a:Page  s:Select N  h/l:Page  /:Search  ?:More ───┘
//
// # Update Loop
//
// Model.Update handles one message and then hands the current page to the
// selection reconciler. Because the reconcile pass runs after every message,
// a planned allocation commits on whichever event completes the pair: the
// page arriving, or the plan being adopted while the page is already shown.
//
// Page loads run as tea.Cmds through PageLoader. Each request carries a
// sequence number; results and retry ticks for superseded requests are
// dropped, and the page store itself discards data for pages other than the
// one requested.
//
// # Selection Gestures
//
//   - Space toggles the cursor row, a toggles the whole page. Both hand the
//     page's full resulting subset to selection.View.ApplyGridSelection.
//   - s opens the count modal. Input goes through selection.ParseCount;
//     invalid input keeps the modal open with the error shown.
//   - x clears every selection and any pending plan.
//
// Search (/) fuzzy-matches titles on the current page and only moves the
// cursor.
//
// # Overlays
//
//   - ?: key help generated from the key map
//   - :: go to page
//   - L: tail of easel's own log file, formatted by logtail
//
// Theme (T) and compact columns (v) are saved to prefs immediately.
package ui

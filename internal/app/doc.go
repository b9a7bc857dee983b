// Package app is the composition root for easel.
//
// # Overview
//
// Run loads configuration and preferences, opens the log file, builds the
// Art Institute API client, and hands everything to the UI:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        ~/.config/easel/config.toml
//	       ├─────> prefs.Load()         theme, compact mode
//	       ├─────> logging.New()        JSON log file
//	       ├─────> artic.NewClient()    HTTP client + circuit breaker
//	       ├─────> state.Store{}        current page
//	       ├─────> NewLoader()          fetch with retries
//	       ├─────> selection.NewStore() selected ids + pending plan
//	       └─────> ui.Run()             TUI (blocks)
//
// # Loading Pages
//
// There is no background poller; pages are fetched on demand when the user
// navigates. Loader.Load runs inside a tea.Cmd:
//
//	Loader.Load(ctx, page)
//	  ├─> FetchPage          attempt 1
//	  ├─> sleep 2s, retry    attempt 2
//	  ├─> sleep 4s, retry    attempt 3 (config "retries")
//	  └─> store.Update()     records, or no data plus the last error
//
// After a page has failed outright the UI schedules another Load using
// RetryDelay, which doubles per consecutive failure up to 30 seconds.
//
// # Error Handling
//
// Errors returned from Run are fatal: a malformed config file, an unusable
// log path, or an invalid API URL. Fetch errors never end the program; they
// surface in the header and are written to the log.
package app

// Package logtail reads the end of easel's log file and formats it for the
// log overlay.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) regardless of file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 500)
//
// Lines longer than 1 MiB fail the read. A missing file is not an error; the
// overlay simply shows no entries.
//
// # Formatting
//
// The logging package writes zerolog JSON. Format turns each entry into a
// single readable line:
//
//	{"level":"warn","component":"loader","page":3,"time":"...","message":"page fetch failed"}
//	→ 15:04:05 WRN loader page fetch failed page=3
//
// Non-JSON lines pass through unchanged.
package logtail

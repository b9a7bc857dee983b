package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file has no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

var levelAbbrev = map[string]string{
	"trace": "TRC",
	"debug": "DBG",
	"info":  "INF",
	"warn":  "WRN",
	"error": "ERR",
	"fatal": "FTL",
	"panic": "PNC",
}

var reservedFields = map[string]bool{"time": true, "level": true, "component": true, "message": true}

// Format renders one JSON log entry as "15:04:05 INF component message k=v",
// with extra fields sorted by key. Lines that are not JSON objects are
// returned unchanged.
func Format(raw string) string {
	var entry map[string]any
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return raw
	}

	var parts []string
	if ts, ok := entry["time"].(string); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			parts = append(parts, t.Local().Format("15:04:05"))
		}
	}
	level, _ := entry["level"].(string)
	if abbrev, ok := levelAbbrev[level]; ok {
		parts = append(parts, abbrev)
	} else {
		parts = append(parts, "???")
	}
	if comp, ok := entry["component"].(string); ok && comp != "" {
		parts = append(parts, comp)
	}
	if msg, ok := entry["message"].(string); ok {
		parts = append(parts, msg)
	}

	keys := make([]string, 0, len(entry))
	for k := range entry {
		if !reservedFields[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, entry[k]))
	}
	return strings.Join(parts, " ")
}

// FormatLines applies Format to each line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Format(line)
	}
	return out
}

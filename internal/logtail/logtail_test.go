package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf(`{"level":"info","message":"line %d"}`, i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "not json",
			expected: "not json",
		},
		{
			name:     "message only",
			input:    `{"message":"hello"}`,
			expected: "??? hello",
		},
		{
			name:     "fields sorted",
			input:    `{"level":"warn","component":"loader","page":3,"attempt":2,"error":"timeout","message":"page fetch failed"}`,
			expected: "WRN loader page fetch failed attempt=2 error=timeout page=3",
		},
		{
			name:     "bad timestamp dropped",
			input:    `{"level":"info","time":"yesterday","message":"easel starting"}`,
			expected: "INF easel starting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.input)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormat_Timestamp(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	raw := fmt.Sprintf(`{"level":"debug","time":%q,"message":"x"}`, ts.Format(time.RFC3339))

	want := ts.Local().Format("15:04:05") + " DBG x"
	if got := Format(raw); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatLines(t *testing.T) {
	input := []string{`{"level":"error","message":"boom"}`, "raw"}
	expected := []string{"ERR boom", "raw"}

	result := FormatLines(input)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("FormatLines() = %q, want %q", result, expected)
	}
}

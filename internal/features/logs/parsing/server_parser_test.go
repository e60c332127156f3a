package logs_parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// All server parser tests pin the clock so reconstructed timestamps are
// deterministic.
func newTestParser() *Parser {
	return &Parser{
		nowFunc: func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		},
	}
}

func epochMsOnTestDay(hour, minute, second, millisecond int) int64 {
	return time.Date(2024, 3, 15, hour, minute, second, millisecond*1_000_000, time.UTC).UnixMilli()
}

func Test_ParseServer_WithTaggedLines_ParsesAllFields(t *testing.T) {
	parser := newTestParser()

	entries := parser.ParseServer("[INFO][ui::12:00:00.000] frame rendered")

	assert.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "ui", entries[0].Module)
	assert.Equal(t, "frame rendered", entries[0].Message)
	assert.Equal(t, epochMsOnTestDay(12, 0, 0, 0), entries[0].Timestamp)
}

func Test_ParseServer_WithBracketedTimeLines_UsesServerModuleSentinel(t *testing.T) {
	parser := newTestParser()

	entries := parser.ParseServer("[14:25:10.123] ERROR (1234): connection refused")

	assert.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "server", entries[0].Module)
	assert.Equal(t, "connection refused", entries[0].Message)
	assert.Equal(t, epochMsOnTestDay(14, 25, 10, 123), entries[0].Timestamp)
}

func Test_ParseServer_WithMixedCaseLevels_PreservesCase(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name          string
		input         string
		expectedLevel string
	}{
		{name: "tagged lowercase", input: "[warn][db::01:02:03.004] slow query", expectedLevel: "warn"},
		{name: "tagged mixed case", input: "[Error][db::01:02:03.004] timeout", expectedLevel: "Error"},
		{name: "bracketed lowercase", input: "[01:02:03.004] info (7): started", expectedLevel: "info"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entries := parser.ParseServer(test.input)

			assert.Len(t, entries, 1)
			assert.Equal(t, test.expectedLevel, entries[0].Level)
		})
	}
}

func Test_ParseServer_WithUnmatchedLines_AppendsContinuations(t *testing.T) {
	parser := newTestParser()
	text := "[ERROR][net::09:15:00.500] request failed\n" +
		"  at fetchData (app.js:42)\n" +
		"  at processQueue (app.js:17)\n" +
		"[INFO][net::09:15:01.000] retrying"

	entries := parser.ParseServer(text)

	assert.Len(t, entries, 2)
	assert.Equal(t,
		"request failed\n  at fetchData (app.js:42)\n  at processQueue (app.js:17)",
		entries[0].Message)
	assert.Equal(t, "retrying", entries[1].Message)
}

func Test_ParseServer_WithLeadingUnmatchedLines_DropsThem(t *testing.T) {
	parser := newTestParser()
	text := "stray noise\nmore noise\n[INFO][ui::08:00:00.000] started"

	entries := parser.ParseServer(text)

	assert.Len(t, entries, 1)
	assert.Equal(t, "started", entries[0].Message)
}

func Test_ParseServer_WithOnlyUnmatchedLines_ReturnsNoEntries(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "plain text", input: "nothing to see\nhere"},
		{name: "json content", input: `{"exportedAt": 1, "logs": []}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entries := parser.ParseServer(test.input)

			assert.Empty(t, entries)
		})
	}
}

func Test_ParseServer_WithTrailingNewline_AppendsEmptyContinuation(t *testing.T) {
	parser := newTestParser()

	entries := parser.ParseServer("[INFO][ui::12:00:00.000] done\n")

	assert.Len(t, entries, 1)
	assert.Equal(t, "done\n", entries[0].Message)
}

func Test_ParseServer_WithMixedFormats_ParsesBothShapes(t *testing.T) {
	parser := newTestParser()
	text := "[DEBUG][sync::07:00:00.001] push queued\n" +
		"[07:00:00.250] WARN (99): disk almost full"

	entries := parser.ParseServer(text)

	assert.Len(t, entries, 2)
	assert.Equal(t, "sync", entries[0].Module)
	assert.Equal(t, "server", entries[1].Module)
	assert.True(t, entries[0].Timestamp < entries[1].Timestamp)
}

func Test_ParseServer_WithEmptyMessage_KeepsEntry(t *testing.T) {
	parser := newTestParser()

	entries := parser.ParseServer("[INFO][ui::12:00:00.000] ")

	assert.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Message)
}

func Test_ParseServer_WithOutOfRangeTime_TreatsLineAsContinuation(t *testing.T) {
	parser := newTestParser()
	text := "[INFO][ui::12:00:00.000] ok\n[INFO][ui::25:61:00.000] impossible"

	entries := parser.ParseServer(text)

	assert.Len(t, entries, 1)
	assert.Equal(t, "ok\n[INFO][ui::25:61:00.000] impossible", entries[0].Message)
}

func Test_ParseServer_ReconstructsTimestampsOnCurrentUtcDay(t *testing.T) {
	// Clock in a non-UTC zone: 2024-03-16 02:30 +05 is 2024-03-15 21:30 UTC,
	// so entries must land on the 15th
	parser := &Parser{
		nowFunc: func() time.Time {
			return time.Date(2024, 3, 16, 2, 30, 0, 0, time.FixedZone("UTC+5", 5*60*60))
		},
	}

	entries := parser.ParseServer("[INFO][ui::23:59:59.999] end of day")

	assert.Len(t, entries, 1)
	assert.Equal(t,
		time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.UTC).UnixMilli(),
		entries[0].Timestamp)
}

package logs_parsing

import (
	"regexp"
	"strings"
	"time"

	time_parser "logweave/internal/util/time"
)

// The bracketed-time format carries no module name, so its entries get a
// fixed sentinel.
const serverModuleSentinel = "server"

var (
	// [LEVEL][module::HH:MM:SS.mmm] message
	taggedLinePattern = regexp.MustCompile(`^\[([A-Za-z]+)\]\[(.+?)::(\d{2}:\d{2}:\d{2}\.\d{3})\] ?(.*)$`)
	// [HH:MM:SS.mmm] LEVEL (pid): message
	bracketedTimePattern = regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2}\.\d{3})\] ([A-Za-z]+) \((\d+)\): ?(.*)$`)
)

// Parser parses raw log text. Server log lines carry only a time of day, so
// the parser's clock decides which calendar day entries land on.
type Parser struct {
	nowFunc func() time.Time
}

// ParseServer processes text line by line and never fails: lines matching
// neither recognized shape are appended to the previous entry's message as
// continuations (stack traces, wrapped lines), or dropped when there is no
// previous entry.
func (p *Parser) ParseServer(text string) []ServerLogEntry {
	day := p.nowFunc().UTC()
	entries := []ServerLogEntry{}

	for _, line := range strings.Split(text, "\n") {
		if entry, ok := p.parseTaggedLine(line, day); ok {
			entries = append(entries, entry)
			continue
		}
		if entry, ok := p.parseBracketedTimeLine(line, day); ok {
			entries = append(entries, entry)
			continue
		}

		if len(entries) == 0 {
			continue
		}
		entries[len(entries)-1].Message += "\n" + line
	}

	return entries
}

func (p *Parser) parseTaggedLine(line string, day time.Time) (ServerLogEntry, bool) {
	match := taggedLinePattern.FindStringSubmatch(line)
	if match == nil {
		return ServerLogEntry{}, false
	}

	timestamp, err := time_parser.ParseDayTime(match[3], day)
	if err != nil {
		return ServerLogEntry{}, false
	}

	return ServerLogEntry{
		Timestamp: timestamp.UnixMilli(),
		Level:     match[1],
		Module:    match[2],
		Message:   match[4],
	}, true
}

func (p *Parser) parseBracketedTimeLine(line string, day time.Time) (ServerLogEntry, bool) {
	match := bracketedTimePattern.FindStringSubmatch(line)
	if match == nil {
		return ServerLogEntry{}, false
	}

	timestamp, err := time_parser.ParseDayTime(match[1], day)
	if err != nil {
		return ServerLogEntry{}, false
	}

	// match[3] is the pid, parsed and discarded
	return ServerLogEntry{
		Timestamp: timestamp.UnixMilli(),
		Level:     match[2],
		Module:    serverModuleSentinel,
		Message:   match[4],
	}, true
}

package logs_parsing

// ClientLogEntry is one record from a structured client export. Fields absent
// in the source record stay zero-valued; individual records are never rejected.
type ClientLogEntry struct {
	Timestamp int64  `json:"timestamp"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Key       string `json:"key"`
	// Messages holds the record's heterogeneous message parts: string,
	// json.Number, map[string]any, []any or nil.
	Messages []any `json:"messages"`
}

// ClientExport is the decoded top-level client export envelope.
type ClientExport struct {
	ExportedAt int64            `json:"exportedAt"`
	Logs       []ClientLogEntry `json:"logs"`
}

// ServerLogEntry is one record from line-oriented server text logs. The
// timestamp is reconstructed from a time-of-day, so it always falls on the
// day the file was parsed.
type ServerLogEntry struct {
	Timestamp int64  `json:"timestamp"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
}

// DetectResult carries the outcome of format detection: exactly one of
// ClientEntries or ServerEntries is populated, matching Format.
type DetectResult struct {
	Format        LogFormat        `json:"format"`
	ClientEntries []ClientLogEntry `json:"clientEntries,omitempty"`
	ServerEntries []ServerLogEntry `json:"serverEntries,omitempty"`
}

package logs_parsing

// DetectAndParse is the sole ingestion entry point. Client JSON is tried
// first and wins only when it yields at least one log entry, so a file that
// happens to be valid empty-log JSON is never classified as client. Server
// text wins with at least one recognized line. Anything else is
// UNKNOWN_FORMAT.
func (p *Parser) DetectAndParse(text string) (*DetectResult, error) {
	export, err := ParseClient(text)
	if err == nil && len(export.Logs) > 0 {
		return &DetectResult{
			Format:        LogFormatClient,
			ClientEntries: export.Logs,
		}, nil
	}

	serverEntries := p.ParseServer(text)
	if len(serverEntries) > 0 {
		return &DetectResult{
			Format:        LogFormatServer,
			ServerEntries: serverEntries,
		}, nil
	}

	return nil, &ParseError{
		Code:    ErrorUnknownFormat,
		Message: "content matches neither client export nor server log format",
	}
}

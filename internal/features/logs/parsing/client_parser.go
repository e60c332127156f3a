package logs_parsing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParseClient strictly decodes a client JSON export. Only a malformed
// envelope fails the parse; structurally incomplete individual records are
// mapped field-by-field with absent fields left zero-valued. The envelope
// decodes as a raw map so present-but-mistyped fields can be told apart
// from broken JSON.
func ParseClient(text string) (*ClientExport, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var doc map[string]any
	if err := decoder.Decode(&doc); err != nil {
		return nil, classifyDecodeError(err)
	}
	if decoder.More() {
		return nil, &ParseError{
			Code:    ErrorInvalidJson,
			Message: "export contains trailing content after the JSON value",
		}
	}

	var missing []string
	rawExportedAt, hasExportedAt := doc["exportedAt"]
	if !hasExportedAt {
		missing = append(missing, "exportedAt")
	}
	rawLogs, hasLogs := doc["logs"]
	if !hasLogs {
		missing = append(missing, "logs")
	}
	if len(missing) > 0 {
		return nil, &ParseError{
			Code:    ErrorInvalidData,
			Message: fmt.Sprintf("export is missing required fields: %s", strings.Join(missing, ", ")),
			Fields:  missing,
		}
	}

	exportedAt, ok := rawExportedAt.(json.Number)
	if !ok {
		return nil, &ParseError{
			Code:    ErrorInvalidData,
			Message: `export field "exportedAt" must be a number`,
			Fields:  []string{"exportedAt"},
		}
	}
	records, ok := rawLogs.([]any)
	if !ok {
		return nil, &ParseError{
			Code:    ErrorInvalidData,
			Message: `export field "logs" must be an array`,
			Fields:  []string{"logs"},
		}
	}

	export := &ClientExport{
		ExportedAt: numberToEpochMs(exportedAt),
		Logs:       make([]ClientLogEntry, 0, len(records)),
	}
	for _, raw := range records {
		record, _ := raw.(map[string]any)
		export.Logs = append(export.Logs, mapClientLogEntry(record))
	}

	return export, nil
}

func classifyDecodeError(err error) *ParseError {
	// Syntactically valid JSON whose top level is not an object
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ParseError{
			Code:    ErrorInvalidData,
			Message: "export must be a JSON object",
			Err:     err,
		}
	}

	return &ParseError{
		Code:    ErrorInvalidJson,
		Message: "export is not valid JSON: " + err.Error(),
		Err:     err,
	}
}

func mapClientLogEntry(record map[string]any) ClientLogEntry {
	entry := ClientLogEntry{}

	if value, ok := record["timestamp"].(json.Number); ok {
		entry.Timestamp = numberToEpochMs(value)
	}
	if value, ok := record["level"].(string); ok {
		entry.Level = value
	}
	if value, ok := record["module"].(string); ok {
		entry.Module = value
	}
	if value, ok := record["key"].(string); ok {
		entry.Key = value
	}
	if value, ok := record["messages"].([]any); ok {
		entry.Messages = value
	}

	return entry
}

func numberToEpochMs(value json.Number) int64 {
	if ms, err := value.Int64(); err == nil {
		return ms
	}
	if f, err := value.Float64(); err == nil {
		return int64(f)
	}

	return 0
}

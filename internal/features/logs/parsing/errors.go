package logs_parsing

// ParseError is returned for every parse-level failure so callers can show
// the reason and leave their current state untouched.
type ParseError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	Err     error    `json:"-"`
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const (
	// Client text is not syntactically valid JSON
	ErrorInvalidJson = "INVALID_JSON"
	// JSON is valid but the export envelope is missing or mistyping
	// required fields
	ErrorInvalidData = "INVALID_DATA"
	// Content matches neither client nor server shape
	ErrorUnknownFormat = "UNKNOWN_FORMAT"
)

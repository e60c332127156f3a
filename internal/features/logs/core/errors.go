package logs_core

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Error codes for sessions
const (
	ErrorSessionNotFound = "SESSION_NOT_FOUND"
	ErrorInvalidToken    = "INVALID_TOKEN"
)

// Error codes for upload ingestion
const (
	ErrorNoFilesProvided = "NO_FILES_PROVIDED"
	ErrorTooManyFiles    = "TOO_MANY_FILES"
	ErrorUploadTooLarge  = "UPLOAD_TOO_LARGE"
	ErrorTooManyUploads  = "TOO_MANY_UPLOADS"
	ErrorSystemOverload  = "SYSTEM_OVERLOADED"
)

// Error codes for viewing
const (
	ErrorEntityNotFound = "ENTITY_NOT_FOUND"
)

package logs_uploading

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	logs_core "logweave/internal/features/logs/core"
	logs_entities "logweave/internal/features/logs/entities"
	logs_parsing "logweave/internal/features/logs/parsing"
	logs_search "logweave/internal/features/logs/search"
	logs_timeline "logweave/internal/features/logs/timeline"
	"logweave/internal/features/sessions"
	system_resources "logweave/internal/features/system/resources"
	rate_limit "logweave/internal/util/rate_limit"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// A whole batch of files counts as one request against the limiter
	UploadsPerSecondLimit = 1
	UploadsBurstLimit     = 5
)

type UploadService struct {
	sessionRepository *sessions.SessionRepository
	rateLimiter       *rate_limit.RateLimiter
	resourceService   *system_resources.ResourceMonitorService
	parser            *logs_parsing.Parser
	maxFiles          int
	maxFileSizeBytes  int64
	logger            *slog.Logger
}

type parsedUpload struct {
	fileName  string
	sizeBytes int64
	result    *logs_parsing.DetectResult
}

// IngestFiles validates and parses every file before touching the session,
// so a failing file leaves timeline, index, history and revision unchanged.
func (s *UploadService) IngestFiles(
	sessionID uuid.UUID,
	files []*multipart.FileHeader,
) (*UploadResponseDTO, error) {
	if err := s.validateBatch(files); err != nil {
		return nil, err
	}

	if s.resourceService.IsOverloaded() {
		return nil, &logs_core.ValidationError{
			Code:    logs_core.ErrorSystemOverload,
			Message: "server is under memory pressure, try again later",
		}
	}

	if err := s.validateRateLimit(sessionID); err != nil {
		return nil, err
	}

	parsed, err := s.parseFiles(files)
	if err != nil {
		return nil, err
	}

	var response *UploadResponseDTO

	err = s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		response = s.applyUploads(session, parsed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Ingested uploaded files",
		slog.String("sessionId", sessionID.String()),
		slog.Int("files", len(parsed)),
		slog.Int("eventCount", response.EventCount),
		slog.Int("revision", response.Revision))

	return response, nil
}

// GetUploadHistory returns the session's upload records newest first.
func (s *UploadService) GetUploadHistory(sessionID uuid.UUID) (*UploadHistoryResponseDTO, error) {
	var response *UploadHistoryResponseDTO

	err := s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		uploads := make([]sessions.UploadRecord, len(session.Uploads))
		for i, record := range session.Uploads {
			uploads[len(session.Uploads)-1-i] = record
		}

		response = &UploadHistoryResponseDTO{
			Uploads: uploads,
			Total:   len(uploads),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// OnBeforeSessionDeletion drops the session's upload rate bucket together
// with the session itself.
func (s *UploadService) OnBeforeSessionDeletion(sessionID uuid.UUID) error {
	s.rateLimiter.ResetRateLimit(sessionID)
	return nil
}

func (s *UploadService) validateBatch(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorNoFilesProvided,
			Message: "at least one file is required",
			Field:   "files",
		}
	}

	if len(files) > s.maxFiles {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorTooManyFiles,
			Message: fmt.Sprintf("at most %d files can be uploaded at once", s.maxFiles),
			Field:   "files",
		}
	}

	for _, fileHeader := range files {
		if fileHeader.Size > s.maxFileSizeBytes {
			return &logs_core.ValidationError{
				Code: logs_core.ErrorUploadTooLarge,
				Message: fmt.Sprintf(
					"file %q exceeds the %dMB size limit",
					fileHeader.Filename,
					s.maxFileSizeBytes/(1024*1024)),
				Field: "files",
			}
		}
	}

	return nil
}

func (s *UploadService) validateRateLimit(sessionID uuid.UUID) error {
	result := s.rateLimiter.CheckRateLimit(sessionID, UploadsPerSecondLimit, UploadsBurstLimit)

	if !result.Allowed {
		return &logs_core.ValidationError{
			Code: logs_core.ErrorTooManyUploads,
			Message: fmt.Sprintf(
				"upload rate limit exceeded, retry after %d seconds",
				result.RetryAfterSec),
		}
	}

	return nil
}

// parseFiles runs format detection for all files concurrently. Parsing is
// pure, so failures cost nothing and results only matter if every file
// succeeds.
func (s *UploadService) parseFiles(files []*multipart.FileHeader) ([]*parsedUpload, error) {
	parsed := make([]*parsedUpload, len(files))

	group := new(errgroup.Group)
	for i, fileHeader := range files {
		i, fileHeader := i, fileHeader
		group.Go(func() error {
			content, err := readUploadedFile(fileHeader)
			if err != nil {
				return fmt.Errorf("failed to read file %q: %w", fileHeader.Filename, err)
			}

			result, err := s.parser.DetectAndParse(string(content))
			if err != nil {
				if parseErr, ok := err.(*logs_parsing.ParseError); ok {
					return &logs_parsing.ParseError{
						Code:    parseErr.Code,
						Message: fmt.Sprintf("file %q: %s", fileHeader.Filename, parseErr.Message),
						Fields:  parseErr.Fields,
						Err:     parseErr.Err,
					}
				}

				return err
			}

			parsed[i] = &parsedUpload{
				fileName:  fileHeader.Filename,
				sizeBytes: fileHeader.Size,
				result:    result,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return parsed, nil
}

// applyUploads runs under the session slot lock. Derived state is rebuilt
// from the full accumulated entry sets so events from files uploaded out of
// chronological order still interleave correctly.
func (s *UploadService) applyUploads(
	session *sessions.Session,
	parsed []*parsedUpload,
) *UploadResponseDTO {
	fileResults := make([]UploadedFileResultDTO, 0, len(parsed))

	for _, upload := range parsed {
		switch upload.result.Format {
		case logs_parsing.LogFormatClient:
			session.ClientEntries = append(session.ClientEntries, upload.result.ClientEntries...)
		case logs_parsing.LogFormatServer:
			session.ServerEntries = append(session.ServerEntries, upload.result.ServerEntries...)
		}

		entryCount := len(upload.result.ClientEntries) + len(upload.result.ServerEntries)

		session.Uploads = append(session.Uploads, sessions.UploadRecord{
			ID:         uuid.New(),
			FileName:   upload.fileName,
			SizeBytes:  upload.sizeBytes,
			Format:     upload.result.Format,
			EntryCount: entryCount,
			UploadedAt: time.Now().UTC(),
		})

		fileResults = append(fileResults, UploadedFileResultDTO{
			FileName:   upload.fileName,
			Format:     upload.result.Format,
			EntryCount: entryCount,
			SizeBytes:  upload.sizeBytes,
		})
	}

	session.Timeline = logs_timeline.BuildTimeline(session.ClientEntries, session.ServerEntries)
	session.EntityIndex = logs_entities.BuildEntityIndex(session.Timeline)
	session.Filtered = logs_search.SearchTimeline(session.Timeline, session.Query)
	session.Cursor = logs_search.ClampCursor(session.Cursor, len(session.Filtered))
	session.Revision++

	return &UploadResponseDTO{
		Files:       fileResults,
		Revision:    session.Revision,
		EventCount:  len(session.Timeline),
		EntityCount: len(session.EntityIndex.Entities),
		MatchCount:  len(session.Filtered),
		Cursor:      session.Cursor,
	}
}

func readUploadedFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

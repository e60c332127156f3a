package logs_viewing

import (
	"fmt"
	"html"
	"log/slog"

	logs_core "logweave/internal/features/logs/core"
	logs_entities "logweave/internal/features/logs/entities"
	logs_linkify "logweave/internal/features/logs/linkify"
	logs_search "logweave/internal/features/logs/search"
	logs_timeline "logweave/internal/features/logs/timeline"
	"logweave/internal/features/sessions"
	cache_utils "logweave/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const RenderModeHTML = "html"

type ViewingService struct {
	sessionRepository *sessions.SessionRepository
	searchCache       *cache_utils.CacheUtil[[]logs_timeline.LogEvent]
	searchGroup       singleflight.Group
	logger            *slog.Logger
}

// GetTimeline returns the session's events, narrowed by query when one is
// given. Slices are snapshotted under the slot lock and never mutated after
// a rebuild, so search and rendering run outside the lock.
func (s *ViewingService) GetTimeline(
	sessionID uuid.UUID,
	query string,
	render string,
) (*TimelineResponseDTO, error) {
	var timeline []logs_timeline.LogEvent
	var revision int

	err := s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		timeline = session.Timeline
		revision = session.Revision
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := timeline
	if query != "" {
		events = s.searchWithCache(sessionID, revision, query, timeline)
	}

	return &TimelineResponseDTO{
		Events:   renderTimelineEvents(events, query, render),
		Total:    len(events),
		Query:    query,
		Revision: revision,
	}, nil
}

// SetSearchQuery stores the query, recomputes the match set and resets the
// cursor to the first match.
func (s *ViewingService) SetSearchQuery(
	sessionID uuid.UUID,
	query string,
) (*SearchStateResponseDTO, error) {
	var response *SearchStateResponseDTO

	err := s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		session.Query = query
		session.Filtered = logs_search.SearchTimeline(session.Timeline, query)
		session.Cursor = 0
		session.Revision++

		if query != "" {
			filtered := session.Filtered
			s.searchCache.Set(searchCacheKey(session.ID, session.Revision, query), &filtered)
		}

		response = newSearchStateDTO(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Search query updated",
		slog.String("sessionId", sessionID.String()),
		slog.Int("matchCount", response.MatchCount))

	return response, nil
}

// NextMatch advances the cursor with wraparound. Cursor movement leaves the
// match set untouched, so the revision stays put.
func (s *ViewingService) NextMatch(sessionID uuid.UUID) (*SearchStateResponseDTO, error) {
	return s.moveCursor(sessionID, logs_search.AdvanceCursor)
}

// PrevMatch retreats the cursor with wraparound.
func (s *ViewingService) PrevMatch(sessionID uuid.UUID) (*SearchStateResponseDTO, error) {
	return s.moveCursor(sessionID, logs_search.RetreatCursor)
}

// GetEntitySummary returns the per-kind id lists, narrowed by the picker
// query when one is given.
func (s *ViewingService) GetEntitySummary(
	sessionID uuid.UUID,
	query string,
) (*EntitySummaryResponseDTO, error) {
	var index *logs_entities.EntityIndex

	err := s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		index = session.EntityIndex
		return nil
	})
	if err != nil {
		return nil, err
	}

	docIDs := logs_entities.FilterEntityIDs(index.ByType[logs_entities.EntityTypeDocID], query)
	charmIDs := logs_entities.FilterEntityIDs(index.ByType[logs_entities.EntityTypeCharmID], query)
	spaceIDs := logs_entities.FilterEntityIDs(index.ByType[logs_entities.EntityTypeSpaceID], query)

	return &EntitySummaryResponseDTO{
		DocIDs:   EntityGroupDTO{IDs: docIDs, Count: len(docIDs)},
		CharmIDs: EntityGroupDTO{IDs: charmIDs, Count: len(charmIDs)},
		SpaceIDs: EntityGroupDTO{IDs: spaceIDs, Count: len(spaceIDs)},
		Total:    len(docIDs) + len(charmIDs) + len(spaceIDs),
	}, nil
}

// GetEntityDetail returns one entity's aggregate record together with its
// observing events, rendered through the same pipeline as the timeline.
func (s *ViewingService) GetEntityDetail(
	sessionID uuid.UUID,
	entityID string,
	query string,
	render string,
) (*EntityDetailResponseDTO, error) {
	var info *logs_entities.EntityInfo

	err := s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		info = session.EntityIndex.Entities[entityID]
		return nil
	})
	if err != nil {
		return nil, err
	}

	if info == nil {
		return nil, &logs_core.ValidationError{
			Code:    logs_core.ErrorEntityNotFound,
			Message: "entity not found in this session",
		}
	}

	return &EntityDetailResponseDTO{
		Entity: info,
		Events: renderTimelineEvents(info.Events, query, render),
	}, nil
}

func (s *ViewingService) moveCursor(
	sessionID uuid.UUID,
	move func(cursor, matchCount int) int,
) (*SearchStateResponseDTO, error) {
	var response *SearchStateResponseDTO

	err := s.sessionRepository.WithSession(sessionID, func(session *sessions.Session) error {
		session.Cursor = move(session.Cursor, len(session.Filtered))
		response = newSearchStateDTO(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// searchWithCache serves repeated queries from the revision-scoped cache.
// Keys carry the revision, so results from before an upload become
// unreachable instead of needing invalidation. Concurrent identical
// searches collapse into one computation via singleflight.
func (s *ViewingService) searchWithCache(
	sessionID uuid.UUID,
	revision int,
	query string,
	timeline []logs_timeline.LogEvent,
) []logs_timeline.LogEvent {
	key := searchCacheKey(sessionID, revision, query)

	if cached := s.searchCache.Get(key); cached != nil {
		return *cached
	}

	result, _, _ := s.searchGroup.Do(key, func() (any, error) {
		if cached := s.searchCache.Get(key); cached != nil {
			return *cached, nil
		}

		filtered := logs_search.SearchTimeline(timeline, query)
		s.searchCache.Set(key, &filtered)

		return filtered, nil
	})

	return result.([]logs_timeline.LogEvent)
}

func searchCacheKey(sessionID uuid.UUID, revision int, query string) string {
	return fmt.Sprintf("%s:%d:%s", sessionID, revision, query)
}

func newSearchStateDTO(session *sessions.Session) *SearchStateResponseDTO {
	eventID := ""
	if len(session.Filtered) > 0 && session.Cursor < len(session.Filtered) {
		eventID = session.Filtered[session.Cursor].ID.String()
	}

	return &SearchStateResponseDTO{
		Query:      session.Query,
		Cursor:     session.Cursor,
		MatchCount: len(session.Filtered),
		EventID:    eventID,
	}
}

func renderTimelineEvents(
	events []logs_timeline.LogEvent,
	query string,
	render string,
) []TimelineEventDTO {
	rendered := make([]TimelineEventDTO, 0, len(events))

	for _, event := range events {
		rendered = append(rendered, TimelineEventDTO{
			ID:        event.ID,
			Timestamp: event.Timestamp,
			Level:     event.Level,
			Module:    event.Module,
			Message:   renderMessage(event.Message, query, render),
			Source:    event.Source,
		})
	}

	return rendered
}

// renderMessage prepares a message for direct HTML insertion: escape, then
// linkify ids, then highlight. Linkification must come before highlighting,
// which is tag-aware and treats the injected wrappers as opaque markup.
func renderMessage(message, query, render string) string {
	if render != RenderModeHTML {
		return message
	}

	escaped := html.EscapeString(message)
	linkified := logs_linkify.MakeIDsClickable(escaped)

	return logs_search.HighlightText(linkified, query)
}

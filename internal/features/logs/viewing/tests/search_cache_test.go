package logs_viewing_tests

import (
	"net/http"
	"testing"

	logs_uploading "logweave/internal/features/logs/uploading"
	logs_viewing "logweave/internal/features/logs/viewing"
	test_utils "logweave/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetTimeline_RepeatedQuery_StableResults(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	var first logs_viewing.TimelineResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/timeline?query=replication", session.Token, http.StatusOK, &first)

	var second logs_viewing.TimelineResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/timeline?query=replication", session.Token, http.StatusOK, &second)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Events, second.Events)
}

func Test_GetTimeline_UploadAfterQuery_CachedResultsNotServedStale(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	var before logs_viewing.TimelineResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/timeline?query=replication", session.Token, http.StatusOK, &before)
	assert.Equal(t, 2, before.Total)

	// The upload bumps the revision, so the cached result for the old
	// revision must become unreachable
	logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "followup.json", Content: viewingFollowupExport})

	var after logs_viewing.TimelineResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/timeline?query=replication", session.Token, http.StatusOK, &after)

	assert.Equal(t, 3, after.Total)
	assert.Greater(t, after.Revision, before.Revision)
}

func Test_SetSearchQuery_UploadRecomputesMatches(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	state := setSearchQuery(t, router, session.Token, "replication")
	assert.Equal(t, 2, state.MatchCount)

	logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "followup.json", Content: viewingFollowupExport})

	var sessionState logs_viewing.SearchStateResponseDTO
	test_utils.MakePostRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/search/next", session.Token,
		nil, http.StatusOK, &sessionState)

	// The active query was re-run against the grown timeline during the
	// upload
	assert.Equal(t, 3, sessionState.MatchCount)
	assert.Equal(t, 1, sessionState.Cursor)
}

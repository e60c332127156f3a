package logs_viewing_tests

import (
	"net/http"
	"testing"

	logs_entities "logweave/internal/features/logs/entities"
	logs_uploading "logweave/internal/features/logs/uploading"
	logs_viewing "logweave/internal/features/logs/viewing"
	"logweave/internal/features/sessions"
	test_utils "logweave/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetEntitySummary_GroupsByKind(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	var summary logs_viewing.EntitySummaryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/entities", session.Token, http.StatusOK, &summary)

	assert.Equal(t, []string{testDocCID}, summary.DocIDs.IDs)
	assert.Equal(t, []string{testCharmCID}, summary.CharmIDs.IDs)
	assert.Equal(t, []string{testSpaceDID}, summary.SpaceIDs.IDs)
	assert.Equal(t, 1, summary.DocIDs.Count)
	assert.Equal(t, 1, summary.CharmIDs.Count)
	assert.Equal(t, 1, summary.SpaceIDs.Count)
	assert.Equal(t, 3, summary.Total)
}

func Test_GetEntitySummary_PickerQuery_NarrowsLists(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	var summary logs_viewing.EntitySummaryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/entities?query=did:key", session.Token, http.StatusOK, &summary)

	assert.Empty(t, summary.DocIDs.IDs)
	assert.Empty(t, summary.CharmIDs.IDs)
	assert.Equal(t, []string{testSpaceDID}, summary.SpaceIDs.IDs)
	assert.Equal(t, 1, summary.Total)
}

func Test_GetEntitySummary_EmptySession_EmptyGroups(t *testing.T) {
	router := CreateViewingTestRouter()
	session := sessions.CreateTestSession(router)

	var summary logs_viewing.EntitySummaryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/entities", session.Token, http.StatusOK, &summary)

	assert.Empty(t, summary.DocIDs.IDs)
	assert.Empty(t, summary.CharmIDs.IDs)
	assert.Empty(t, summary.SpaceIDs.IDs)
	assert.Equal(t, 0, summary.Total)
}

func Test_GetEntityDetail_ReturnsAggregateAndEvents(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	var detail logs_viewing.EntityDetailResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/entities/"+testDocCID, session.Token, http.StatusOK, &detail)

	assert.Equal(t, testDocCID, detail.Entity.ID)
	assert.Equal(t, logs_entities.EntityTypeDocID, detail.Entity.Type)
	assert.Equal(t, int64(1714060801000), detail.Entity.FirstSeen)
	assert.Equal(t, int64(1714060801000), detail.Entity.LastSeen)
	assert.Equal(t, 1, detail.Entity.EventCount)

	assert.Len(t, detail.Events, 1)
	assert.Contains(t, detail.Events[0].Message, "Stored doc")
}

func Test_GetEntityDetail_SecondObservation_ExtendsSeenRange(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "followup.json", Content: viewingFollowupExport})

	var detail logs_viewing.EntityDetailResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/entities/"+testDocCID, session.Token, http.StatusOK, &detail)

	assert.Equal(t, int64(1714060801000), detail.Entity.FirstSeen)
	assert.Equal(t, int64(1714060807000), detail.Entity.LastSeen)
	assert.Equal(t, 2, detail.Entity.EventCount)
	assert.Len(t, detail.Events, 2)
}

func Test_GetEntityDetail_HTMLRender_LinkifiesEventMessages(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	var detail logs_viewing.EntityDetailResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/sessions/current/entities/"+testDocCID+"?render=html",
		session.Token, http.StatusOK, &detail)

	expected := `Stored doc <span class="clickable-id" data-kind="cid" data-id="` +
		testDocCID + `">` + testDocCID + `</span>`
	assert.Equal(t, expected, detail.Events[0].Message)
}

func Test_GetEntityDetail_UnknownEntity_ReturnsNotFound(t *testing.T) {
	router := CreateViewingTestRouter()
	session := CreatePopulatedSession(router)

	response := test_utils.MakeGetRequest(t, router,
		"/api/v1/sessions/current/entities/baunknownid1234567890123456789012345678901234567890",
		session.Token, http.StatusNotFound)

	assert.Contains(t, string(response.Body), "ENTITY_NOT_FOUND")
}

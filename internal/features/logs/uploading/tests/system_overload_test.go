package logs_uploading_tests

import (
	"net/http"
	"testing"

	logs_core "logweave/internal/features/logs/core"
	logs_uploading "logweave/internal/features/logs/uploading"
	"logweave/internal/features/sessions"
	system_resources "logweave/internal/features/system/resources"

	"github.com/stretchr/testify/assert"
)

func Test_UploadFiles_MemoryOverloaded_ReturnsServiceUnavailable(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	system_resources.ForceOverloadForTest(true)
	defer system_resources.ForceOverloadForTest(false)

	response := MakeUploadRequest(t, router, session.Token,
		[]logs_uploading.TestUploadFile{{Name: "export.json", Content: validClientExport}},
		http.StatusServiceUnavailable)

	assert.Contains(t, string(response.Body), logs_core.ErrorSystemOverload)

	state := GetSessionState(t, router, session.Token)
	assert.Equal(t, 0, state.Revision)
	assert.Equal(t, 0, state.EventCount)
}

func Test_UploadFiles_OverloadCleared_UploadsAcceptedAgain(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	system_resources.ForceOverloadForTest(true)
	MakeUploadRequest(t, router, session.Token,
		[]logs_uploading.TestUploadFile{{Name: "export.json", Content: validClientExport}},
		http.StatusServiceUnavailable)

	system_resources.ForceOverloadForTest(false)
	MakeUploadRequest(t, router, session.Token,
		[]logs_uploading.TestUploadFile{{Name: "export.json", Content: validClientExport}},
		http.StatusOK)
}

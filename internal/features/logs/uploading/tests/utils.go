package logs_uploading_tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	logs_uploading "logweave/internal/features/logs/uploading"
	"logweave/internal/features/sessions"
	test_utils "logweave/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const validClientExport = `{
  "exportedAt": 1714060800000,
  "logs": [
    {"timestamp": 1714060801000, "level": "info", "module": "storage", "key": "doc.store", "messages": ["Stored doc baedreic7dvjvssmh6b62azkrx6o4wmymbbwffgx3brpte2ykm3y6ukepzm"]},
    {"timestamp": 1714060802000, "level": "warn", "module": "runner", "key": "charm.load", "messages": ["Loading charm state", {"attempt": 2}]}
  ]
}`

const validServerLog = `[INFO][replication::10:00:01.000] Sync started for space did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK
[10:00:02.500] LOG (4812): Sync complete
	retry queue drained`

const undetectableContent = "completely unstructured text without any recognizable log lines"

func CreateUploadTestRouter() *gin.Engine {
	return sessions.CreateSessionTestRouter(logs_uploading.GetUploadController())
}

// MakeUploadRequest posts a multipart upload and asserts the response status,
// multipart counterpart to test_utils.MakeRequest.
func MakeUploadRequest(
	t *testing.T,
	router *gin.Engine,
	authToken string,
	files []logs_uploading.TestUploadFile,
	expectedStatus int,
) *test_utils.TestResponse {
	t.Helper()

	body, contentType := logs_uploading.BuildMultipartUploadForm(files)

	req, err := http.NewRequest("POST", "/api/v1/sessions/current/uploads", body)
	if err != nil {
		t.Fatalf("failed to build upload request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, expectedStatus, w.Code,
		"upload returned unexpected status, body: %s", w.Body.String())

	return &test_utils.TestResponse{Code: w.Code, Body: w.Body.Bytes()}
}

func GetSessionState(t *testing.T, router *gin.Engine, authToken string) *sessions.SessionStateResponseDTO {
	t.Helper()

	var state sessions.SessionStateResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/sessions/current", authToken, http.StatusOK, &state)

	return &state
}

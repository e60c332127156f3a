package logs_uploading_tests

import (
	"testing"

	logs_parsing "logweave/internal/features/logs/parsing"
	logs_uploading "logweave/internal/features/logs/uploading"
	"logweave/internal/features/sessions"

	"github.com/stretchr/testify/assert"
)

func Test_UploadFiles_ClientExport_EntriesIngested(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	response := logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "export.json", Content: validClientExport})

	assert.Len(t, response.Files, 1)
	assert.Equal(t, "export.json", response.Files[0].FileName)
	assert.Equal(t, logs_parsing.LogFormatClient, response.Files[0].Format)
	assert.Equal(t, 2, response.Files[0].EntryCount)
	assert.Equal(t, int64(len(validClientExport)), response.Files[0].SizeBytes)

	assert.Equal(t, 1, response.Revision)
	assert.Equal(t, 2, response.EventCount)
	assert.Equal(t, 1, response.EntityCount)
	assert.Equal(t, 0, response.Cursor)
}

func Test_UploadFiles_ServerLog_EntriesIngested(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	response := logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "server.log", Content: validServerLog})

	assert.Len(t, response.Files, 1)
	assert.Equal(t, logs_parsing.LogFormatServer, response.Files[0].Format)
	// Two recognized lines, the indented third folds into the second as a
	// continuation
	assert.Equal(t, 2, response.Files[0].EntryCount)
	assert.Equal(t, 2, response.EventCount)
	assert.Equal(t, 1, response.EntityCount)
}

func Test_UploadFiles_MixedBatch_BothFormatsIngested(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	response := logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "export.json", Content: validClientExport},
		logs_uploading.TestUploadFile{Name: "server.log", Content: validServerLog})

	assert.Len(t, response.Files, 2)
	assert.Equal(t, logs_parsing.LogFormatClient, response.Files[0].Format)
	assert.Equal(t, logs_parsing.LogFormatServer, response.Files[1].Format)

	assert.Equal(t, 1, response.Revision)
	assert.Equal(t, 4, response.EventCount)
	assert.Equal(t, 2, response.EntityCount)
}

func Test_UploadFiles_EmptyQuery_AllEventsMatch(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	response := logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "export.json", Content: validClientExport})

	assert.Equal(t, response.EventCount, response.MatchCount)
}

func Test_UploadFiles_SequentialUploads_StateAccumulates(t *testing.T) {
	router := CreateUploadTestRouter()
	session := sessions.CreateTestSession(router)

	logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "export.json", Content: validClientExport})
	response := logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "server.log", Content: validServerLog})

	assert.Equal(t, 2, response.Revision)
	assert.Equal(t, 4, response.EventCount)

	state := GetSessionState(t, router, session.Token)
	assert.Equal(t, 2, state.Revision)
	assert.Equal(t, 4, state.EventCount)
	assert.Equal(t, 2, state.EntityCount)
	assert.Equal(t, 2, state.UploadCount)
}

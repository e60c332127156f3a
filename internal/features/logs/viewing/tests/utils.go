package logs_viewing_tests

import (
	logs_uploading "logweave/internal/features/logs/uploading"
	logs_viewing "logweave/internal/features/logs/viewing"
	"logweave/internal/features/sessions"

	"github.com/gin-gonic/gin"
)

const (
	testDocCID   = "baedreic7dvjvssmh6b62azkrx6o4wmymbbwffgx3brpte2ykm3y6ukepzm"
	testCharmCID = "baedreib2qkm4uyutzistviqftyiogqg2tsgh3tum5abj7wzerxkmu3moae"
	testSpaceDID = "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK"
)

// Five client entries with fixed timestamps: one doc id, one charm id, one
// space did, one plain failure line and one line with markup characters.
const viewingClientExport = `{
  "exportedAt": 1714060800000,
  "logs": [
    {"timestamp": 1714060801000, "level": "info", "module": "storage", "key": "doc.store", "messages": ["Stored doc baedreic7dvjvssmh6b62azkrx6o4wmymbbwffgx3brpte2ykm3y6ukepzm"]},
    {"timestamp": 1714060802000, "level": "info", "module": "runner", "key": "charm.start", "messages": ["Loading charm baedreib2qkm4uyutzistviqftyiogqg2tsgh3tum5abj7wzerxkmu3moae"]},
    {"timestamp": 1714060803000, "level": "warn", "module": "replication", "key": "space.sync", "messages": ["Replicating space did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK"]},
    {"timestamp": 1714060804000, "level": "error", "module": "replication", "key": "space.sync", "messages": ["Replication failed for host alpha"]},
    {"timestamp": 1714060805000, "level": "debug", "module": "ui", "key": "render", "messages": ["Render <b>bold</b> & stuff"]}
  ]
}`

// Follow-up upload: one new replication match plus a second observation of
// the doc id at a later timestamp.
const viewingFollowupExport = `{
  "exportedAt": 1714060900000,
  "logs": [
    {"timestamp": 1714060806000, "level": "info", "module": "replication", "key": "space.sync", "messages": ["Replication retry scheduled"]},
    {"timestamp": 1714060807000, "level": "info", "module": "storage", "key": "doc.store", "messages": ["Stored doc baedreic7dvjvssmh6b62azkrx6o4wmymbbwffgx3brpte2ykm3y6ukepzm again"]}
  ]
}`

func CreateViewingTestRouter() *gin.Engine {
	return sessions.CreateSessionTestRouter(
		logs_viewing.GetViewingController(),
		logs_uploading.GetUploadController(),
	)
}

// CreatePopulatedSession creates a session and uploads the main fixture
// into it.
func CreatePopulatedSession(router *gin.Engine) *sessions.CreateSessionResponseDTO {
	session := sessions.CreateTestSession(router)

	logs_uploading.UploadTestFiles(router, session.Token,
		logs_uploading.TestUploadFile{Name: "viewing.json", Content: viewingClientExport})

	return session
}

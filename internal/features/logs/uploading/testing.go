package logs_uploading

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

type TestUploadFile struct {
	Name    string
	Content string
}

// BuildMultipartUploadForm assembles a multipart body with one "files" part
// per file, in the given order.
func BuildMultipartUploadForm(files []TestUploadFile) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			panic(fmt.Sprintf("Failed to create form file: %v", err))
		}

		if _, err := part.Write([]byte(file.Content)); err != nil {
			panic(fmt.Sprintf("Failed to write form file content: %v", err))
		}
	}

	if err := writer.Close(); err != nil {
		panic(fmt.Sprintf("Failed to close multipart writer: %v", err))
	}

	return body, writer.FormDataContentType()
}

// UploadTestFiles uploads the given files into the token's session and
// panics on any failure, for tests that need pre-populated sessions.
func UploadTestFiles(
	router *gin.Engine,
	authToken string,
	files ...TestUploadFile,
) *UploadResponseDTO {
	body, contentType := BuildMultipartUploadForm(files)

	req, err := http.NewRequest("POST", "/api/v1/sessions/current/uploads", body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to upload test files. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response UploadResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

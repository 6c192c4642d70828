package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadFile(t *testing.T) {
	_, s3Mock, _ := setupTestEnv(t)
	router := newTestRouter()

	content := []byte("%PDF-1.4 stored document")
	s3Mock.UploadDocument("orders/abc/abc-source.pdf", content, "application/pdf")
	s3Mock.UploadDocument("orders/abc/abc-translated.docx", []byte("translated"), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")

	tests := []struct {
		name                string
		path                string
		expectedStatus      int
		expectedContentType string
		expectedError       string
	}{
		{
			name:                "Download stored PDF",
			path:                "orders/abc/abc-source.pdf",
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/pdf",
		},
		{
			name:                "Download stored DOCX",
			path:                "orders/abc/abc-translated.docx",
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		{
			name:           "Fail with nonexistent path",
			path:           "orders/missing/missing-source.pdf",
			expectedStatus: http.StatusNotFound,
			expectedError:  "File not found",
		},
		{
			name:           "Fail with missing path parameter",
			path:           "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "File path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/files/download?path="+tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError, response["error"])
				return
			}

			assert.Equal(t, tt.expectedContentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		})
	}

	// The streamed bytes match what was stored
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/files/download?path=orders/abc/abc-source.pdf", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, content, w.Body.Bytes())
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"blobd/internal/presentation"
)

func TestHandleDelete_Integration(t *testing.T) {
	services := setupServices(t)
	e := newTestServer(t, services)

	content := pdfBytes()

	deleteRequest := func(path, apiKey string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, path, http.NoBody)
		if apiKey != "" {
			req.Header.Set(presentation.APIKeyHeader, apiKey)
		}

		return req
	}

	testCases := []struct {
		name           string
		setupRequest   func() *http.Request
		expectedStatus int
		checkResponse  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "deletes an existing blob",
			setupRequest: func() *http.Request {
				uploadTestBlob(t, e, testContainer, "documentos", "borrar.pdf", content, "application/pdf")

				return deleteRequest("/uploads/documentos/borrar.pdf", testAPIKey)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				getRec := httptest.NewRecorder()
				e.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, "/uploads/documentos/borrar.pdf", http.NoBody))
				assert.Equal(t, http.StatusNotFound, getRec.Code)
			},
		},
		{
			name: "unknown blob",
			setupRequest: func() *http.Request {
				return deleteRequest("/uploads/documentos/inexistente.pdf", testAPIKey)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "path with dot segments",
			setupRequest: func() *http.Request {
				return deleteRequest("/uploads/../fuera.pdf", testAPIKey)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing API key",
			setupRequest: func() *http.Request {
				return deleteRequest("/uploads/documentos/protegido.pdf", "")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown API key",
			setupRequest: func() *http.Request {
				return deleteRequest("/uploads/documentos/protegido.pdf", "not-the-key")
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, tc.setupRequest())

			assert.Equal(t, tc.expectedStatus, rec.Code, rec.Body.String())
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

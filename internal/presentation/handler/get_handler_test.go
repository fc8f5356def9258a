package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"blobd/internal/presentation"
)

func TestHandleGet_Integration(t *testing.T) {
	services := setupServices(t)
	e := newTestServer(t, services)

	content := pdfBytes()
	uploadTestBlob(t, e, testContainer, "documentos/2024", "documento.pdf", content, "application/pdf")
	uploadTestBlob(t, e, testContainer, "", "raiz.pdf", content, "application/pdf")

	testCases := []struct {
		name           string
		setupRequest   func() *http.Request
		expectedStatus int
		checkResponse  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "streams an existing blob",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/uploads/documentos/2024/documento.pdf", http.NoBody)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				assert.Equal(t, content, rec.Body.Bytes())
				assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
				assert.Equal(t, fmt.Sprintf("%d", len(content)), rec.Header().Get(echo.HeaderContentLength))
				assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
			},
		},
		{
			name: "streams a blob at the container root",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/uploads/raiz.pdf", http.NoBody)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				assert.Equal(t, content, rec.Body.Bytes())
			},
		},
		{
			name: "unknown blob",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/uploads/documentos/perdido.pdf", http.NoBody)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				assert.NotEmpty(t, rec.Header().Get(presentation.ReasonTag))
			},
		},
		{
			name: "unknown container",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/otros/documento.pdf", http.NoBody)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "path with dot segments",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/uploads/../documento.pdf", http.NoBody)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty blob path",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/uploads/", http.NoBody)
			},
			expectedStatus: http.StatusBadRequest,
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

func TestHandleHead_Integration(t *testing.T) {
	services := setupServices(t)
	e := newTestServer(t, services)

	content := pdfBytes()
	uploadTestBlob(t, e, testContainer, "documentos", "informe.pdf", content, "application/pdf")

	t.Run("metadata without body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/uploads/documentos/informe.pdf", http.NoBody))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
		assert.Equal(t, "application/pdf", rec.Header().Get(presentation.TypeKey))
		assert.Equal(t, fmt.Sprintf("%d", len(content)), rec.Header().Get(echo.HeaderContentLength))
	})

	t.Run("unknown blob", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/uploads/documentos/nada.pdf", http.NoBody))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blobd/internal/domain/dto"
	"blobd/internal/presentation"
)

func TestHandleList_Integration(t *testing.T) {
	services := setupServices(t)
	e := newTestServer(t, services)

	pdf := pdfBytes()
	text := []byte("una nota de texto plano para los listados")

	uploadTestBlob(t, e, testContainer, "", "raiz.txt", text, "text/plain")
	uploadTestBlob(t, e, testContainer, "documentos/2024", "informe.pdf", pdf, "application/pdf")
	uploadTestBlob(t, e, testContainer, "documentos/2024/q1", "balance.pdf", pdf, "application/pdf")
	uploadTestBlob(t, e, testContainer, "otros", "nota.txt", text, "text/plain")

	listBlobs := func(t *testing.T, target string) ([]dto.BlobDescriptor, *httptest.ResponseRecorder) {
		t.Helper()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
		if rec.Code != http.StatusOK {
			return nil, rec
		}

		var blobs []dto.BlobDescriptor
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blobs))

		return blobs, rec
	}

	pathsOf := func(blobs []dto.BlobDescriptor) []string {
		paths := make([]string, 0, len(blobs))
		for _, blob := range blobs {
			paths = append(paths, blob.BlobPath)
		}

		return paths
	}

	t.Run("whole container newest first", func(t *testing.T) {
		blobs, rec := listBlobs(t, "/list/uploads")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, blobs, 4)

		for i := 1; i < len(blobs); i++ {
			assert.GreaterOrEqual(t, blobs[i-1].Uploaded, blobs[i].Uploaded)
		}
		for _, blob := range blobs {
			assert.Equal(t, testContainer, blob.ContainerName)
			assert.Equal(t, publicAddress+"/uploads/"+blob.BlobPath, blob.URL)
			assert.NotEmpty(t, blob.Sha256)
			assert.Positive(t, blob.Size)
		}
	})

	t.Run("directory filter covers the subtree", func(t *testing.T) {
		blobs, rec := listBlobs(t, "/list/uploads?directory=documentos/2024")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.ElementsMatch(t,
			[]string{"documentos/2024/informe.pdf", "documentos/2024/q1/balance.pdf"},
			pathsOf(blobs))

		blobs, rec = listBlobs(t, "/list/uploads?directory=documentos/2024/q1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"documentos/2024/q1/balance.pdf"}, pathsOf(blobs))

		blobs, rec = listBlobs(t, "/list/uploads?directory=desconocido")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, blobs)
	})

	t.Run("upload time window", func(t *testing.T) {
		past := time.Now().Add(-time.Hour).Unix()
		future := time.Now().Add(time.Hour).Unix()

		blobs, rec := listBlobs(t, fmt.Sprintf("/list/uploads?since=%d", past))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, blobs, 4)

		blobs, rec = listBlobs(t, fmt.Sprintf("/list/uploads?since=%d&until=%d", past, future))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, blobs, 4)

		blobs, rec = listBlobs(t, fmt.Sprintf("/list/uploads?until=%d", past))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, blobs)

		blobs, rec = listBlobs(t, fmt.Sprintf("/list/uploads?since=%d", future))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, blobs)
	})

	t.Run("empty container returns an empty list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list/vacio", http.NoBody))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		_, rec := listBlobs(t, "/list/uploads?since=ayer")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Header().Get(presentation.ReasonTag), "since")
	})

	t.Run("invalid container name", func(t *testing.T) {
		_, rec := listBlobs(t, "/list/NOPE")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

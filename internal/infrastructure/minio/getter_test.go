package minio

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	client := setupMinio(t)

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000})
	getter := NewGetter(client, &GetterConfig{Timeout: 5000})

	content := []byte("contenido para lectura")
	_, err := uploader.Upload(context.Background(), TestContainer,
		"documentos/lectura.txt", content, "text/plain")
	require.NoError(t, err)

	reader, err := getter.Get(context.Background(), TestContainer, "documentos/lectura.txt")
	require.NoError(t, err)
	defer reader.Close()

	read, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, read)
}

func TestGetMissingObject(t *testing.T) {
	client := setupMinio(t)

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000})
	getter := NewGetter(client, &GetterConfig{Timeout: 5000})

	_, err := uploader.Upload(context.Background(), TestContainer,
		"algo.txt", []byte("hola"), "text/plain")
	require.NoError(t, err)

	_, err = getter.Get(context.Background(), TestContainer, "no-existe.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "object not found")
}

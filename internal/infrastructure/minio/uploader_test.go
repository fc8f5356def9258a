package minio

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	TestContainer = "uploads"
)

func setupMinio(t *testing.T) *minio.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(TestAccessKey, TestSecretKey, ""),
		Secure:          false,
		TrailingHeaders: true,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	return client
}

func TestUpload(t *testing.T) {
	client := setupMinio(t)

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000})

	content := []byte("%PDF-1.4\nhello, blob storage")
	hash := sha256.Sum256(content)

	result, err := uploader.Upload(context.Background(), TestContainer,
		"documentos/2024/doc.pdf", content, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(hash[:]), result.Sha256)
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Equal(t, "application/pdf", result.MimeType)

	// the container is created on first use
	exists, err := client.BucketExists(context.Background(), TestContainer)
	require.NoError(t, err)
	assert.True(t, exists)

	object, err := client.GetObject(context.Background(), TestContainer,
		"documentos/2024/doc.pdf", minio.GetObjectOptions{})
	require.NoError(t, err)
	stored, err := io.ReadAll(object)
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	stat, err := client.StatObject(context.Background(), TestContainer,
		"documentos/2024/doc.pdf", minio.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", stat.ContentType)
}

func TestUploadExistingContainer(t *testing.T) {
	client := setupMinio(t)

	require.NoError(t, client.MakeBucket(context.Background(), TestContainer, minio.MakeBucketOptions{}))

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000})

	_, err := uploader.Upload(context.Background(), TestContainer,
		"doc.txt", []byte("plain text"), "text/plain")
	require.NoError(t, err)

	// a second write to the same path replaces the object
	replacement := bytes.Repeat([]byte("x"), 64)
	result, err := uploader.Upload(context.Background(), TestContainer,
		"doc.txt", replacement, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, int64(len(replacement)), result.Size)
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestGetByPath(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTestDatabase(t, uri)

	writer := NewBlobWriter(db)
	retriever := NewBlobRetriever(db)

	stored := testBlob("uploads", "documentos/2024/doc.pdf")
	require.NoError(t, writer.Write(context.Background(), stored))

	blob, err := retriever.GetByPath(context.Background(), "uploads", "documentos/2024/doc.pdf")
	require.NoError(t, err)
	require.Equal(t, stored.ID, blob.ID)
	require.Equal(t, "uploads", blob.Container)
	require.Equal(t, "documentos/2024/doc.pdf", blob.Path)
	require.Equal(t, "documentos/2024", blob.Directory)
	require.Equal(t, "doc.pdf", blob.Name)
	require.Equal(t, stored.Sha256, blob.Sha256)
	require.Nil(t, blob.MovedTime)
	require.Nil(t, blob.VerifiedAt)

	_, err = retriever.GetByPath(context.Background(), "uploads", "documentos/2024/missing.pdf")
	require.ErrorIs(t, err, mongo.ErrNoDocuments)

	_, err = retriever.GetByPath(context.Background(), "other-container", "documentos/2024/doc.pdf")
	require.ErrorIs(t, err, mongo.ErrNoDocuments)
}

package dto

// MoveRequest is the body of POST /move. It relocates a single blob inside a
// container; both paths may carry directory segments.
type MoveRequest struct {
	// ContainerName is the container holding the blob.
	ContainerName string `json:"containerName" validate:"required" example:"uploads"`

	// SourceBlobPath is the current path of the blob, relative to the
	// container root.
	SourceBlobPath string `json:"sourceBlobPath" validate:"required" example:"temporal/documento.pdf"`

	// DestinationBlobPath is the path the blob is moved to, relative to the
	// container root.
	DestinationBlobPath string `json:"destinationBlobPath" validate:"required" example:"documentos/2024/documento-final.pdf"`
}

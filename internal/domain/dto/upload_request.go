package dto

// UploadRequest is the body of POST /upload. The payload travels inline as
// Base64 so the endpoint stays a plain JSON API.
type UploadRequest struct {
	// ContainerName is the container the blob is stored in.
	ContainerName string `json:"containerName" validate:"required" example:"uploads"`

	// BlobName is the name the blob is stored under, without directory
	// segments.
	BlobName string `json:"blobName" validate:"required" example:"documento.pdf"`

	// Directory is an optional directory prefix inside the container. Empty
	// means the blob is stored at the container root.
	Directory string `json:"directory,omitempty" example:"documentos/2024"`

	// FileBase64 is the blob content, Base64-encoded (RFC 4648, standard
	// alphabet).
	FileBase64 string `json:"fileBase64" validate:"required" example:"JVBERi0xLj"`

	// MimeType is the MIME type of the decoded content.
	MimeType string `json:"mimeType" validate:"required" example:"application/pdf"`
}

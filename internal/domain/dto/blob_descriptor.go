package dto

// BlobDescriptor describes a stored blob in API responses.
type BlobDescriptor struct {
	URL           string `json:"url" example:"http://localhost:3000/uploads/documentos/2024/documento.pdf"`
	ContainerName string `json:"containerName" example:"uploads"`
	BlobPath      string `json:"blobPath" example:"documentos/2024/documento.pdf"`
	Sha256        string `json:"sha256" example:"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"`
	Size          int64  `json:"size" example:"204800"`
	MimeType      string `json:"mimeType" example:"application/pdf"`
	Uploaded      int64  `json:"uploaded" example:"1718210400"`
}

// MoveResult reports a completed move.
type MoveResult struct {
	ContainerName       string `json:"containerName" example:"uploads"`
	SourceBlobPath      string `json:"sourceBlobPath" example:"temporal/documento.pdf"`
	DestinationBlobPath string `json:"destinationBlobPath" example:"documentos/2024/documento-final.pdf"`
	URL                 string `json:"url" example:"http://localhost:3000/uploads/documentos/2024/documento-final.pdf"`
	Moved               int64  `json:"moved" example:"1718210400"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"fileBase64 is required"`
}

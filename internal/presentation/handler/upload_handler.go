package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"blobd/internal/application/usecase/abstraction"
	"blobd/internal/domain/dto"
	"blobd/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
	validate *validator.Validate
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		validate: validator.New(),
	}
}

// HandleUpload handles POST /upload requests.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	var req dto.UploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request body",
			Message: "body must be a JSON upload request",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Message: validationMessage(err),
		})
	}

	result, err := h.uploader.Upload(c.Request().Context(), req)
	if err != nil {
		logger.Error("upload failed", "container", req.ContainerName, "err", err)

		return c.JSON(statusOr(result.Status, http.StatusInternalServerError), dto.ErrorResponse{
			Error:   "upload failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, dto.BlobDescriptor{
		URL:           result.URL,
		ContainerName: req.ContainerName,
		BlobPath:      result.Path,
		Sha256:        result.Sha256,
		Size:          result.Size,
		MimeType:      result.MimeType,
		Uploaded:      result.Uploaded.Unix(),
	})
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, fieldErr.Field())
		}

		return "missing or invalid fields: " + strings.Join(fields, ", ")
	}

	return err.Error()
}

func statusOr(status, fallback int) int {
	if status == 0 {
		return fallback
	}

	return status
}

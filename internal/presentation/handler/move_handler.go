package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"blobd/internal/application/usecase/abstraction"
	"blobd/internal/domain/dto"
	"blobd/pkg/logger"
)

type MoveHandler struct {
	mover    abstraction.Mover
	validate *validator.Validate
}

func NewMoveHandler(mover abstraction.Mover) *MoveHandler {
	return &MoveHandler{
		mover:    mover,
		validate: validator.New(),
	}
}

// HandleMove handles POST /move requests.
func (h *MoveHandler) HandleMove(c echo.Context) error {
	var req dto.MoveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request body",
			Message: "body must be a JSON move request",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Message: validationMessage(err),
		})
	}

	result, err := h.mover.Move(c.Request().Context(), req)
	if err != nil {
		logger.Error("move failed", "container", req.ContainerName,
			"source", req.SourceBlobPath, "err", err)

		return c.JSON(statusOr(result.Status, http.StatusInternalServerError), dto.ErrorResponse{
			Error:   "move failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.MoveResult{
		ContainerName:       req.ContainerName,
		SourceBlobPath:      result.Source,
		DestinationBlobPath: result.Destination,
		URL:                 result.URL,
		Moved:               result.Moved.Unix(),
	})
}

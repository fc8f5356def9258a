package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blobd/internal/application/usecase/abstraction"
	"blobd/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /:container/* requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	container, path, err := blobAddress(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	status, err := h.deleter.DeleteBlob(c.Request().Context(), container, path)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(status)
	}

	return c.NoContent(http.StatusOK)
}

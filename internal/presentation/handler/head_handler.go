package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"blobd/internal/application/usecase/abstraction"
	"blobd/internal/presentation"
)

type HeadHandler struct {
	getter abstraction.Getter
}

func NewHeadHandler(getter abstraction.Getter) *HeadHandler {
	return &HeadHandler{
		getter: getter,
	}
}

// HandleHead handles HEAD /:container/* requests.
func (h *HeadHandler) HandleHead(c echo.Context) error {
	container, path, err := blobAddress(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	blob, err := h.getter.GetBlob(c.Request().Context(), container, path)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusNotFound)
	}

	c.Response().Header().Set("Accept-Ranges", "bytes")
	c.Response().Header().Set("Content-Length", fmt.Sprintf("%d", blob.Size))
	c.Response().Header().Set(presentation.TypeKey, blob.MimeType)

	return c.NoContent(http.StatusOK)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"blobd/internal/application/usecase/abstraction"
	"blobd/internal/presentation"
	"blobd/pkg/utils"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /:container/* requests by streaming the blob content.
func (h *GetHandler) HandleGet(c echo.Context) error {
	container, path, err := blobAddress(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	blob, reader, err := h.getter.OpenBlob(c.Request().Context(), container, path)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusNotFound)
	}
	defer reader.Close()

	c.Response().Header().Set("Accept-Ranges", "bytes")
	c.Response().Header().Set("Content-Length", fmt.Sprintf("%d", blob.Size))

	return c.Stream(http.StatusOK, blob.MimeType, reader)
}

// blobAddress pulls the container and canonical blob path out of the route.
func blobAddress(c echo.Context) (container, path string, err error) {
	container = c.Param(presentation.ContainerParam)
	if container == "" {
		return "", "", fmt.Errorf("missing container name")
	}

	path, err = utils.CleanObjectPath(c.Param(presentation.WildcardParam))
	if err != nil {
		return "", "", fmt.Errorf("invalid blob path: %w", err)
	}

	return container, path, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blobd/internal/presentation"
)

// APIKeyMiddleware guards mutating routes. Requests must carry one of the
// configured keys in the X-API-Key header.
func APIKeyMiddleware(keys []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key != "" {
			allowed[key] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			provided := ctx.Request().Header.Get(presentation.APIKeyHeader)
			if provided == "" {
				ctx.Response().Header().Set(presentation.ReasonTag, "missing X-API-Key header")

				return ctx.NoContent(http.StatusUnauthorized)
			}

			if _, ok := allowed[provided]; !ok {
				ctx.Response().Header().Set(presentation.ReasonTag, "invalid API key")

				return ctx.NoContent(http.StatusUnauthorized)
			}

			return next(ctx)
		}
	}
}

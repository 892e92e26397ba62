// Package server provides the HTTP API for the verb dictionary.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/okabe/verbbook/internal/config"
	"github.com/okabe/verbbook/internal/verbs"
)

// New builds the echo server with all API routes registered. Requests
// outside /api/ fall through to the static asset directory.
func New(cfg *config.Config, repo verbs.Repository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORS.AllowedOrigins,
	}))
	e.Use(middleware.Gzip())
	e.HTTPErrorHandler = wrapError

	h := NewHandler(cfg, repo)

	api := e.Group("/api")
	api.GET("/search", h.Search)
	api.GET("/config", h.Config)
	api.GET("/export", h.Export)
	api.POST("/verify", h.Verify)

	admin := api.Group("", h.requireAdmin)
	admin.POST("/batch_add", h.BatchAdd)
	admin.POST("/update", h.Update)
	admin.POST("/delete", h.Delete)
	admin.POST("/batch_delete", h.BatchDelete)

	if cfg.Server.StaticDir != "" {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  cfg.Server.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api/")
			},
		}))
	}

	return e
}

// wrapError is the single failure boundary: any error escaping a
// handler becomes a JSON body with the error message. Errors that
// carry an HTTP status keep it; everything else is a 500.
func wrapError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]string{"error": fmt.Sprint(httpErr.Message)})
		return
	}
	_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

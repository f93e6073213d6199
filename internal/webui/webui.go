// Package webui serves an optional browser UI for exercising the search
// API by hand. Disabled unless Config.WebUIEnabled is set.
package webui

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var assets embed.FS

// Handler serves the single-page UI at GET /ui.
func Handler() gin.HandlerFunc {
	page, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic("webui: embedded index.html missing: " + err.Error())
	}

	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}

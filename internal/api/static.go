package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ecocart/backend/internal/types"
)

// StaticHandler serves the storefront pages for every path no API route
// claims.
type StaticHandler struct {
	dir   string
	pages map[string]string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		dir: dir,
		pages: map[string]string{
			"/":          "home.html",
			"/dashboard": "dashboard.html",
		},
	}
}

// NoRoute is installed as the engine's fallback handler.
func (h *StaticHandler) NoRoute(c *gin.Context) {
	urlPath := c.Request.URL.Path
	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusMethodNotAllowed, types.ErrorResponse{Error: "Method not allowed"})
		return
	}

	name, ok := h.pages[urlPath]
	if !ok {
		// Clean against "/" so ".." cannot climb out of dir.
		name = strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	}

	file := filepath.Join(h.dir, filepath.FromSlash(name))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
		return
	}
	c.File(file)
}

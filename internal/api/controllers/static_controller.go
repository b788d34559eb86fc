package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"fitlead/internal/services"
	"fitlead/pkg/utils"
)

// StaticController serves the marketing site verbatim from a directory.
type StaticController struct {
	root string
}

func NewStaticController(root string) *StaticController {
	return &StaticController{root: root}
}

// NotFound is the engine's NoRoute handler. Unknown API routes get a JSON 404,
// everything else is looked up under the static root.
func (s *StaticController) NotFound(c *gin.Context) {
	urlPath := c.Request.URL.Path
	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		utils.RespondError(c, http.StatusNotFound, "Not found")
		return
	}

	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		utils.RespondError(c, http.StatusNotFound, "Not found")
		return
	}

	file, ok := s.resolve(urlPath)
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	f, err := os.Open(file)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	// c.File would redirect */index.html to the bare directory.
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

func (s *StaticController) resolve(urlPath string) (string, bool) {
	cleaned := path.Clean("/" + services.NormalizePagePath(urlPath))
	file := filepath.Join(s.root, filepath.FromSlash(cleaned))

	info, err := os.Stat(file)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		file = filepath.Join(file, "index.html")
		if info, err = os.Stat(file); err != nil || info.IsDir() {
			return "", false
		}
	}
	return file, true
}

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

const indexDocument = "index.html"

// StaticHandler serves the exported frontend bundle. Paths that do not name
// a file fall back to index.html so client-side routes load the app.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Cleaning as an absolute path removes any "..", keeping lookups under root.
	upath := path.Clean("/" + r.URL.Path)
	if upath != "/" {
		if h.serveFile(w, r, filepath.Join(h.root, filepath.FromSlash(upath))) {
			return
		}
	}
	if !h.serveFile(w, r, filepath.Join(h.root, indexDocument)) {
		requestLogger(r).WithField("root", h.root).Error("Frontend index document not found")
		http.NotFound(w, r)
	}
}

// serveFile writes name if it is a regular file and reports whether it did.
// http.ServeContent is used instead of http.ServeFile, which would redirect
// requests for /index.html.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

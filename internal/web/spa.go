package web

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves static files out of dir and falls back to index.html
// for any path that doesn't match a file, so the single-page client
// handles unknown routes itself.
func SPAHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}

package server

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	errs "github.com/matzehuels/blogscope/pkg/errors"
)

const (
	immutable = "public, max-age=31536000, immutable"
	noCache   = "no-cache, no-store, must-revalidate"
)

// serveAsset serves the file named by the request path, or index.html when
// the path does not name a regular file.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || errs.ValidateAssetPath(name) != nil || !s.isFile(name) {
		name = indexFile
	}
	s.serveFile(w, r, name, http.StatusOK)
}

func (s *Server) isFile(name string) bool {
	info, err := fs.Stat(s.assets, name)
	return err == nil && info.Mode().IsRegular()
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string, status int) {
	data, err := fs.ReadFile(s.assets, name)
	if err != nil {
		s.logger.Error("read asset", "name", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if isHTML(name) {
		w.Header().Set("Cache-Control", noCache)
	} else {
		w.Header().Set("Cache-Control", immutable)
	}

	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		w.Write(data)
		return
	}
	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
}

func isHTML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".html" || ext == ".htm"
}

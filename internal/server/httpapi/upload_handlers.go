package httpapi

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/charafmezdari/portfolio/internal/common"
)

// parseUploadForm caps the request body and parses the multipart form.
// The cap is the per-file ceiling plus headroom for the other form fields,
// so an oversized payload is cut off while streaming instead of being
// buffered whole. Returns false after writing the error response.
func (s *HTTPServer) parseUploadForm(w http.ResponseWriter, r *http.Request) bool {

	limit := s.maxUpload + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeMessage(w, http.StatusBadRequest, "File too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return false
	}

	return true
}

func (s *HTTPServer) writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrUnsupportedFileType):
		writeMessage(w, http.StatusBadRequest, "Only image files are allowed!")
	case errors.Is(err, common.ErrFileTooLarge):
		writeMessage(w, http.StatusBadRequest, "File too large")
	default:
		s.logger.Error(r.Context(), "ingesting upload failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ServeUploadHandler streams a previously ingested blob, whichever backend
// holds it.
func (s *HTTPServer) ServeUploadHandler(w http.ResponseWriter, r *http.Request) {

	name := mux.Vars(r)["name"]

	rc, err := s.blobs.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "File not found")
			return
		}
		s.logger.Error(r.Context(), "opening blob failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rc.Close()

	ctype := mime.TypeByExtension(filepath.Ext(name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)

	_, _ = io.Copy(w, rc)
}

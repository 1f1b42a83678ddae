package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/charafmezdari/portfolio/internal/common"
)

// ListAlbumsHandler returns every album. Public.
func (s *HTTPServer) ListAlbumsHandler(w http.ResponseWriter, r *http.Request) {

	albums, err := s.albums.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing albums failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, albums)
}

// GetAlbumHandler returns a single album. Public.
func (s *HTTPServer) GetAlbumHandler(w http.ResponseWriter, r *http.Request) {

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	album, err := s.albums.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Album not found")
			return
		}
		s.logger.Error(r.Context(), "fetching album failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, album)
}

// CreateAlbumHandler creates an album from a multipart form. The cover image
// upload is mandatory.
func (s *HTTPServer) CreateAlbumHandler(w http.ResponseWriter, r *http.Request) {

	if !s.parseUploadForm(w, r) {
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Image is required")
		return
	}
	defer file.Close()

	ref, err := s.ingestor.Ingest(r.Context(), file, header.Filename)
	if err != nil {
		s.writeUploadError(w, r, err)
		return
	}

	album, err := s.albums.Create(r.Context(), r.FormValue("name"), ref)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNameRequired):
			writeMessage(w, http.StatusBadRequest, "Name is required")
		case errors.Is(err, common.ErrImageRequired):
			writeMessage(w, http.StatusBadRequest, "Image is required")
		default:
			s.logger.Error(r.Context(), "creating album failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, album)
}

// UpdateAlbumHandler replaces the album name and optionally its cover. When
// no new file is uploaded the existing reference is retained (or taken from
// the "image" form field, matching the frontend contract).
func (s *HTTPServer) UpdateAlbumHandler(w http.ResponseWriter, r *http.Request) {

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if !s.parseUploadForm(w, r) {
		return
	}

	var imageRef *string

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		ref, err := s.ingestor.Ingest(r.Context(), file, header.Filename)
		if err != nil {
			s.writeUploadError(w, r, err)
			return
		}
		imageRef = &ref
	case errors.Is(err, http.ErrMissingFile):
		if v := r.FormValue("image"); v != "" {
			imageRef = &v
		}
	default:
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	album, err := s.albums.Update(r.Context(), id, r.FormValue("name"), imageRef)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeMessage(w, http.StatusNotFound, "Album not found")
		case errors.Is(err, common.ErrNameRequired):
			writeMessage(w, http.StatusBadRequest, "Name is required")
		default:
			s.logger.Error(r.Context(), "updating album failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, album)
}

// DeleteAlbumHandler removes an album; the store cascades removal of its
// image rows. Blob files are intentionally left behind.
func (s *HTTPServer) DeleteAlbumHandler(w http.ResponseWriter, r *http.Request) {

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := s.albums.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Album not found")
			return
		}
		s.logger.Error(r.Context(), "deleting album failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "Album removed")
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/charafmezdari/portfolio/internal/common"
)

// ListImagesByAlbumHandler returns the images of one album. Public.
func (s *HTTPServer) ListImagesByAlbumHandler(w http.ResponseWriter, r *http.Request) {

	albumID, err := strconv.ParseInt(mux.Vars(r)["albumId"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Album ID is required")
		return
	}

	s.listImages(w, r, albumID)
}

// ListImagesHandler returns the images of the album given via the albumId
// query parameter. Gated, used by the admin interface.
func (s *HTTPServer) ListImagesHandler(w http.ResponseWriter, r *http.Request) {

	albumID, err := strconv.ParseInt(r.URL.Query().Get("albumId"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Album ID is required")
		return
	}

	s.listImages(w, r, albumID)
}

func (s *HTTPServer) listImages(w http.ResponseWriter, r *http.Request, albumID int64) {

	images, err := s.images.ListByAlbum(r.Context(), albumID)
	if err != nil {
		s.logger.Error(r.Context(), "listing images failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, images)
}

// CreateImageHandler adds an image to an existing album from a multipart
// form. The file upload is mandatory; the external link is optional.
func (s *HTTPServer) CreateImageHandler(w http.ResponseWriter, r *http.Request) {

	if !s.parseUploadForm(w, r) {
		return
	}

	albumID, err := strconv.ParseInt(r.FormValue("albumId"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Album ID is required")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	ref, err := s.ingestor.Ingest(r.Context(), file, header.Filename)
	if err != nil {
		s.writeUploadError(w, r, err)
		return
	}

	var link *string
	if v := r.FormValue("link"); v != "" {
		link = &v
	}

	image, err := s.images.Create(r.Context(), albumID, r.FormValue("description"), link, ref)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlbumNotFound):
			writeMessage(w, http.StatusNotFound, "Album not found")
		case errors.Is(err, common.ErrImageRequired):
			writeMessage(w, http.StatusBadRequest, "Image file is required")
		default:
			s.logger.Error(r.Context(), "creating image failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, image)
}

type updateImageRequest struct {
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Link        *string `json:"link"`
}

// UpdateImageHandler replaces every field of an image row with the supplied
// JSON body. Omitted fields clear the stored values (last write wins).
func (s *HTTPServer) UpdateImageHandler(w http.ResponseWriter, r *http.Request) {

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var req updateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	image, err := s.images.Update(r.Context(), id, req.Description, req.ImageURL, req.Link)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Image not found")
			return
		}
		s.logger.Error(r.Context(), "updating image failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, image)
}

// DeleteImageHandler removes a single image row.
func (s *HTTPServer) DeleteImageHandler(w http.ResponseWriter, r *http.Request) {

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := s.images.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Image not found")
			return
		}
		s.logger.Error(r.Context(), "deleting image failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "Image removed")
}

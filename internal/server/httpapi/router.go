package httpapi

import (
	"github.com/gorilla/mux"
)

// NewRouter builds the REST route table. Reads are public; every mutating
// route goes through requireAuth before any request body is parsed.
func (s *HTTPServer) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", s.LoginHandler).Methods("POST")

	r.HandleFunc("/api/albums", s.ListAlbumsHandler).Methods("GET")
	r.HandleFunc("/api/albums/{id:[0-9]+}", s.GetAlbumHandler).Methods("GET")
	r.HandleFunc("/api/albums", s.requireAuth(s.CreateAlbumHandler)).Methods("POST")
	r.HandleFunc("/api/albums/{id:[0-9]+}", s.requireAuth(s.UpdateAlbumHandler)).Methods("PUT")
	r.HandleFunc("/api/albums/{id:[0-9]+}", s.requireAuth(s.DeleteAlbumHandler)).Methods("DELETE")

	r.HandleFunc("/api/images/album/{albumId}", s.ListImagesByAlbumHandler).Methods("GET")
	r.HandleFunc("/api/images", s.requireAuth(s.ListImagesHandler)).Methods("GET")
	r.HandleFunc("/api/images", s.requireAuth(s.CreateImageHandler)).Methods("POST")
	r.HandleFunc("/api/images/{id:[0-9]+}", s.requireAuth(s.UpdateImageHandler)).Methods("PUT")
	r.HandleFunc("/api/images/{id:[0-9]+}", s.requireAuth(s.DeleteImageHandler)).Methods("DELETE")

	r.HandleFunc("/uploads/{name}", s.ServeUploadHandler).Methods("GET")

	return r
}

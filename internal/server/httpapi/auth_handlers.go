package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charafmezdari/portfolio/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler exchanges admin credentials for a signed session token.
func (s *HTTPServer) LoginHandler(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"gpr-profile-service/internal/api/dto"
	"gpr-profile-service/internal/ports"
)

// SessionHandler runs the shared-secret gate. The secret is checked
// exactly once per session; afterwards the issued token authorizes
// all processing requests.
type SessionHandler struct {
	Secret string
	Store  ports.SessionStore
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SessionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	// Gate enabled: the presented secret must match exactly.
	if h.Secret != "" {
		if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.Secret)) != 1 {
			writeError(w, r, http.StatusUnauthorized, "invalid secret")
			return
		}
	}

	token, err := h.Store.Issue()
	if err != nil {
		log.Printf("issue session failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SessionResponse{Token: token})
}

package httpapi

import (
	"encoding/json"
	"net/http"
)

type accountRequest struct {
	ExternalUserID string `json:"externalUserId"`
	Username       string `json:"username"`
	Email          string `json:"email"`
}

type accountCreatedResponse struct {
	ID int64 `json:"id"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if req.ExternalUserID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "externalUserId is required"})
		return
	}

	id, err := s.accounts.Create(r.Context(), req.ExternalUserID, req.Username, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, accountCreatedResponse{ID: id})
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	externalUserID := r.PathValue("externalUserId")

	account, err := s.accounts.Get(r.Context(), externalUserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if account == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "account not found"})
		return
	}

	writeJSON(w, http.StatusOK, account)
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medialog/internal/store"
)

// itemRequest carries the editable fields of an item. Rating and statusNote
// left out of the payload are treated as explicitly absent, not untouched.
type itemRequest struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Rating     *int    `json:"rating"`
	StatusNote *string `json:"statusNote"`
	PlaylistID int64   `json:"playlistId"`
}

func (r itemRequest) toItem() store.Item {
	return store.Item{
		Name:       r.Name,
		Status:     store.Status(r.Status),
		Rating:     r.Rating,
		StatusNote: r.StatusNote,
		PlaylistID: r.PlaylistID,
	}
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	item, err := s.items.Create(r.Context(), req.toItem())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "userId query parameter is required"})
		return
	}

	items, err := s.items.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Items []*store.Item `json:"items"`
	}{Items: items})
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if err := s.items.Update(r.Context(), itemID, req.toItem()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
		return
	}

	if err := s.items.Delete(r.Context(), itemID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

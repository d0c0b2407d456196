package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"medialog/internal/store"
)

// AccountService captures the account directory operations needed by the
// HTTP handlers.
type AccountService interface {
	Create(ctx context.Context, externalUserID, username, email string) (int64, error)
	Get(ctx context.Context, externalUserID string) (*store.Account, error)
}

// PlaylistService coordinates playlist operations.
type PlaylistService interface {
	Create(ctx context.Context, userID, name string) (*store.Playlist, error)
	List(ctx context.Context, userID string) ([]*store.Playlist, error)
	Delete(ctx context.Context, playlistID int64, userID string) error
}

// ItemService coordinates item operations.
type ItemService interface {
	Create(ctx context.Context, item store.Item) (*store.Item, error)
	ListForUser(ctx context.Context, userID string) ([]*store.Item, error)
	ListForPlaylist(ctx context.Context, playlistID int64) ([]*store.Item, error)
	Update(ctx context.Context, itemID int64, item store.Item) error
	Delete(ctx context.Context, itemID int64) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	accounts  AccountService
	playlists PlaylistService
	items     ItemService
}

// New configures a Server over the given services.
func New(accounts AccountService, playlists PlaylistService, items ItemService) *Server {
	return &Server{
		accounts:  accounts,
		playlists: playlists,
		items:     items,
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/accounts", s.handleCreateAccount)
	mux.HandleFunc("GET /api/v1/accounts/{externalUserId}", s.handleGetAccount)

	mux.HandleFunc("POST /api/v1/playlists", s.handleCreatePlaylist)
	mux.HandleFunc("GET /api/v1/playlists", s.handleListPlaylists)
	mux.HandleFunc("DELETE /api/v1/playlists/{id}", s.handleDeletePlaylist)
	mux.HandleFunc("GET /api/v1/playlists/{id}/items", s.handleListPlaylistItems)

	mux.HandleFunc("POST /api/v1/items", s.handleCreateItem)
	mux.HandleFunc("GET /api/v1/items", s.handleListItems)
	mux.HandleFunc("PUT /api/v1/items/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /api/v1/items/{id}", s.handleDeleteItem)

	mux.HandleFunc("GET /api/v1/statuses", handleListStatuses)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

// errStatus maps service errors onto HTTP status codes. Validation errors
// come back distinct from storage failures.
func errStatus(err error) int {
	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, store.ErrPlaylistNotFound), errors.Is(err, store.ErrItemNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errStatus(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type statusResponse struct {
	Status store.Status `json:"status"`
	Label  string       `json:"label"`
}

func handleListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses := make([]statusResponse, 0, len(store.Statuses()))
	for _, status := range store.Statuses() {
		statuses = append(statuses, statusResponse{Status: status, Label: status.Label()})
	}
	writeJSON(w, http.StatusOK, struct {
		Statuses []statusResponse `json:"statuses"`
	}{Statuses: statuses})
}

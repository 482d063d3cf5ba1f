package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dicemaster/scorekeeper/internal/models"
	"github.com/dicemaster/scorekeeper/internal/services/game"
	"github.com/dicemaster/scorekeeper/internal/services/messaging"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// GameService is the turn/round/session controller
	GameService game.Service

	// Messaging renders errors and notices for API consumers
	Messaging messaging.Service

	// Locale selects the notice language
	Locale string

	// Hub serves the websocket event stream; optional
	Hub *Hub
}

// Handler exposes the game service over REST plus a websocket event stream
type Handler struct {
	service  game.Service
	messages messaging.Service
	locale   string
	hub      *Hub
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Handler{
		service:  cfg.GameService,
		messages: cfg.Messaging,
		locale:   cfg.Locale,
		hub:      cfg.Hub,
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/roll", h.handleRoll).Methods(http.MethodPost)
	api.HandleFunc("/session", h.handleNewSession).Methods(http.MethodPost)
	api.HandleFunc("/reset", h.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/participants", h.handleAddParticipant).Methods(http.MethodPost)
	api.HandleFunc("/participants", h.handleListParticipants).Methods(http.MethodGet)
	api.HandleFunc("/participants/last", h.handleRemoveLastParticipant).Methods(http.MethodDelete)
	api.HandleFunc("/participants/{id}", h.handleRemoveParticipant).Methods(http.MethodDelete)
	api.HandleFunc("/leaderboard", h.handleLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/history", h.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/sessions", h.handleSessionHistory).Methods(http.MethodGet)
	api.HandleFunc("/state", h.handleState).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.handleGetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.handleUpdateSettings).Methods(http.MethodPut)
	api.HandleFunc("/modes", h.handleListModes).Methods(http.MethodGet)

	if h.hub != nil {
		r.HandleFunc("/ws", h.hub.ServeWS)
	}

	return r
}

// writeJSON marshals the payload with a 200 status
func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// errorBody is the JSON envelope for failed requests
type errorBody struct {
	Error string `json:"error"`
}

// writeError maps service errors to HTTP statuses and localized notices
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrParticipantNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrEmptyParticipantName):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrNoParticipants),
		errors.Is(err, game.ErrAlreadyRolling),
		errors.Is(err, game.ErrCapacityExceeded),
		errors.Is(err, game.ErrSessionAlreadyStarted),
		errors.Is(err, game.ErrSessionEnded):
		status = http.StatusConflict
	}

	message := err.Error()
	if out, msgErr := h.messages.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{
		Locale: h.locale,
		Err:    err,
	}); msgErr == nil {
		message = out.Message
	}

	h.writeJSON(w, status, errorBody{Error: message})
}

func (h *Handler) handleRoll(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.RollDice(r.Context(), &game.RollDiceInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleNewSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.StartNewSession(r.Context(), &game.StartNewSessionInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.ResetAll(r.Context(), &game.ResetAllInput{}); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addParticipantRequest is the POST /api/participants body
type addParticipantRequest struct {
	Name     string `json:"name"`
	AvatarID string `json:"avatarId"`
	ColorID  string `json:"colorId"`
}

func (h *Handler) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	out, err := h.service.AddParticipant(r.Context(), &game.AddParticipantInput{
		Name:     req.Name,
		AvatarID: req.AvatarID,
		ColorID:  req.ColorID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetState(r.Context(), &game.GetStateInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.State.Participants)
}

func (h *Handler) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	out, err := h.service.RemoveParticipant(r.Context(), &game.RemoveParticipantInput{
		ParticipantID: id,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleRemoveLastParticipant(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.RemoveLastParticipant(r.Context(), &game.RemoveLastParticipantInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetLeaderboard(r.Context(), &game.GetLeaderboardInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Leaderboard)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetHistory(r.Context(), &game.GetHistoryInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetSessionHistory(r.Context(), &game.GetSessionHistoryInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetState(r.Context(), &game.GetStateInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.State)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetState(r.Context(), &game.GetStateInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.State.Settings)
}

func (h *Handler) handleListModes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.GameModeCatalog)
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	out, err := h.service.UpdateSettings(r.Context(), &game.UpdateSettingsInput{
		Settings: settings,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Settings)
}

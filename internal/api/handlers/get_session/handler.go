package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/service/sessions"
)

const msgSessionNotFound = "session introuvable ou expirée"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved: session_id=%s, step=%d", sessionID, view.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}

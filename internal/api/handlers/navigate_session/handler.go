package navigate_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/bookingflow"
	"github.com/elegantcut/booking-service/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgSessionNotFound    = "session introuvable ou expirée"
	msgInvalidAction      = "action inconnue, attendu next ou back"
	msgStepIncomplete     = "l'étape courante est incomplète"
	msgAtFirstStep        = "déjà à la première étape"
	msgAtLastStep         = "déjà à la dernière étape"
	msgSessionCompleted   = "la session est déjà terminée"
)

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

// Handle POST /api/v1/sessions/{sessionId}/navigate
// Body: {action: "next" | "back"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Navigate(r.Context(), sessionID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/navigate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/navigate - Invalid action: session_id=%s, action=%q", sessionID, req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, bookingflow.ErrStepIncomplete):
			// Silent refusal on the client side, the flow state is untouched.
			h.logger.Info("POST /sessions/{id}/navigate - Step incomplete: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgStepIncomplete)

		case errors.Is(err, bookingflow.ErrAtFirstStep):
			h.logger.Warn("POST /sessions/{id}/navigate - At first step: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgAtFirstStep)

		case errors.Is(err, bookingflow.ErrAtLastStep):
			h.logger.Warn("POST /sessions/{id}/navigate - At last step: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgAtLastStep)

		case errors.Is(err, bookingflow.ErrFlowCompleted):
			h.logger.Warn("POST /sessions/{id}/navigate - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)

		default:
			h.logger.Error("POST /sessions/{id}/navigate - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/navigate - Navigated: session_id=%s, action=%s, step=%d",
		sessionID, req.Action, view.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}

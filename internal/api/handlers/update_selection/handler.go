package update_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/bookingflow"
	"github.com/elegantcut/booking-service/internal/service/sessions"
	getAvailableSlots "github.com/elegantcut/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgSessionNotFound    = "session introuvable ou expirée"
	msgUnknownService     = "service introuvable"
	msgUnknownStaff       = "membre du personnel introuvable"
	msgStaffCannotPerform = "ce membre du personnel n'offre pas ce service"
	msgInvalidInput       = "données de requête invalides"
	msgDateInPast         = "la date est déjà passée"
	msgDateTooFar         = "la date dépasse la fenêtre de réservation de 30 jours"
	msgSlotUnavailable    = "ce créneau n'est plus disponible"
	msgNoDateSelected     = "une date doit être choisie avant l'heure"
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

// Handle PATCH /api/v1/sessions/{sessionId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.UpdateSelection(r.Context(), sessionID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/selection - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrUnknownService):
			h.logger.Warn("PATCH /sessions/{id}/selection - Unknown service: session_id=%s, %v", sessionID, err)
			handlers.RespondNotFound(w, msgUnknownService)

		case errors.Is(err, sessions.ErrUnknownStaff):
			h.logger.Warn("PATCH /sessions/{id}/selection - Unknown staff: session_id=%s, %v", sessionID, err)
			handlers.RespondNotFound(w, msgUnknownStaff)

		case errors.Is(err, sessions.ErrStaffCannotPerform):
			h.logger.Warn("PATCH /sessions/{id}/selection - Staff cannot perform service: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgStaffCannotPerform)

		case errors.Is(err, sessions.ErrSlotUnavailable):
			h.logger.Warn("PATCH /sessions/{id}/selection - Slot unavailable: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/selection - Invalid input: session_id=%s, %v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("PATCH /sessions/{id}/selection - Date in past: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("PATCH /sessions/{id}/selection - Date too far: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, bookingflow.ErrNoDateSelected):
			h.logger.Warn("PATCH /sessions/{id}/selection - Time before date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, bookingflow.ErrFlowCompleted):
			h.logger.Warn("PATCH /sessions/{id}/selection - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)

		default:
			h.logger.Error("PATCH /sessions/{id}/selection - Failed to update: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/selection - Selection updated: session_id=%s, step=%d", sessionID, view.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}

package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/bookingflow"
	"github.com/elegantcut/booking-service/internal/service/sessions"
	submitBooking "github.com/elegantcut/booking-service/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound     = "session introuvable ou expirée"
	msgIncompleteSelection = "la sélection est incomplète"
	msgSlotTaken           = "ce créneau vient d'être réservé, veuillez en choisir un autre"
	msgPersistenceFailed   = "une erreur est survenue lors de la réservation, veuillez réessayer"
	msgSessionCompleted    = "la session est déjà terminée"
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

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Submit(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrIncompleteSelection):
			h.logger.Warn("POST /sessions/{id}/submit - Incomplete selection: session_id=%s, %v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgIncompleteSelection)

		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /sessions/{id}/submit - Slot taken: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrPersistence):
			// Retryable: the session keeps its full selection at the contact step.
			h.logger.Error("POST /sessions/{id}/submit - Persistence failure: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPersistenceFailed)

		case errors.Is(err, bookingflow.ErrFlowCompleted):
			h.logger.Warn("POST /sessions/{id}/submit - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Reservation confirmed: session_id=%s, reservation_id=%d",
		sessionID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/elegantcut/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate   = "la date est obligatoire"
	msgInvalidDate   = "format de date invalide, attendu YYYY-MM-DD"
	msgDateInPast    = "la date est déjà passée"
	msgDateTooFar    = "la date dépasse la fenêtre de réservation de 30 jours"
	msgStaffNotFound = "membre du personnel introuvable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /staff/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(staffID, dateStr)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/available-slots - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /staff/{id}/available-slots - Date in past: staff_id=%s, date=%s", staffID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /staff/{id}/available-slots - Date too far: staff_id=%s, date=%s", staffID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /staff/{id}/available-slots - Failed to get slots: staff_id=%s, date=%s, error=%v",
				staffID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/available-slots - Slots retrieved: staff_id=%s, date=%s, slots_count=%d",
		staffID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

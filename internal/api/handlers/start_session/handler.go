package start_session

import (
	"errors"
	"io"
	"net/http"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgUnknownService     = "service introuvable"
	msgUnknownStaff       = "membre du personnel introuvable"
	msgStaffCannotPerform = "ce membre du personnel n'offre pas ce service"
	msgInvalidInput       = "données de requête invalides"
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

// Handle POST /api/v1/sessions
// Body optional: {serviceId, staffId, locale}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrUnknownService):
			h.logger.Warn("POST /sessions - Unknown service: %v", err)
			handlers.RespondNotFound(w, msgUnknownService)

		case errors.Is(err, sessions.ErrUnknownStaff):
			h.logger.Warn("POST /sessions - Unknown staff: %v", err)
			handlers.RespondNotFound(w, msgUnknownStaff)

		case errors.Is(err, sessions.ErrStaffCannotPerform):
			h.logger.Warn("POST /sessions - Staff cannot perform service: %v", err)
			handlers.RespondBadRequest(w, msgStaffCannotPerform)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, step=%d", view.ID, view.Step)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSessionView(view))
}

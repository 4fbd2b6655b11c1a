package list_staff

import (
	"net/http"

	"github.com/elegantcut/booking-service/internal/api/handlers"
)

const msgServiceNotFound = "service introuvable"

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff
// Query params: serviceId (optional) - only staff performing that service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("serviceId")

	if serviceID == "" {
		staff := h.catalog.Staff()
		h.logger.Info("GET /staff - Returned %d staff members", len(staff))
		handlers.RespondJSON(w, http.StatusOK, FromDomainStaff(staff))
		return
	}

	if _, ok := h.catalog.ServiceByID(serviceID); !ok {
		h.logger.Warn("GET /staff - Service not found: service_id=%s", serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	staff := h.catalog.StaffForService(serviceID)
	h.logger.Info("GET /staff - Returned %d staff members for service=%s", len(staff), serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainStaff(staff))
}

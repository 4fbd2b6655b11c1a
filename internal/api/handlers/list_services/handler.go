package list_services

import (
	"net/http"

	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/domain"
)

const msgUnknownCategory = "catégorie de service inconnue"

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

// Handle GET /api/v1/services
// Query params: category (optional), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	staffID := r.URL.Query().Get("staffId")

	var services []domain.Service
	switch {
	case category != "":
		if !domain.IsValidServiceCategory(category) {
			h.logger.Warn("GET /services - Unknown category: %s", category)
			handlers.RespondBadRequest(w, msgUnknownCategory)
			return
		}
		services = h.catalog.ServicesByCategory(domain.ServiceCategory(category))
	case staffID != "":
		services = h.catalog.ServicesForStaff(staffID)
	default:
		services = h.catalog.Services()
	}

	h.logger.Info("GET /services - Returned %d services, category=%q, staff=%q",
		len(services), category, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}

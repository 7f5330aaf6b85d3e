package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/metrics"
)

// NewRouter wires the HTTP surface. Reads are public; every mutating route
// and everything scoped to the caller sits behind JWT auth.
func NewRouter(h *Handler, jwtSecret, serviceName string, appLogger logger.Logger, m *metrics.Manager) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(Trace(serviceName))
	mux.Use(Observe(m))
	mux.Use(RequestLogger(appLogger))

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Get("/api/listings", h.HandleFeed)
	mux.Get("/api/listings/{id}", h.HandleGetListing)

	mux.Get("/api/real-estates", h.HandleRealEstateSearch)
	mux.Get("/api/vehicles", h.HandleVehicleSearch)
	mux.Get("/api/lands", h.HandleLandSearch)
	mux.Get("/api/workplaces", h.HandleWorkplaceSearch)

	mux.Get("/api/search/advanced", h.HandleAdvancedSearch)
	mux.Get("/api/search/suggestions", h.HandleSuggestions)
	mux.Get("/api/search/nearby", h.HandleNearbySearch)

	mux.Post("/api/compare", h.HandleCompare)

	mux.Group(func(r chi.Router) {
		r.Use(JWTAuth(jwtSecret))

		r.Post("/api/listings", h.HandleCreateListing)
		r.Patch("/api/listings/{id}", h.HandleUpdateListing)
		r.Patch("/api/listings/{id}/status", h.HandleUpdateListingStatus)
		r.Delete("/api/listings/{id}", h.HandleDeleteListing)
		r.Post("/api/listings/{id}/images", h.HandleUploadImage)

		r.Post("/api/search/saved", h.HandleSaveSearch)
		r.Get("/api/search/saved", h.HandleListSavedSearches)
		r.Get("/api/search/saved/{id}/results", h.HandleReplaySavedSearch)
		r.Delete("/api/search/saved/{id}", h.HandleDeleteSavedSearch)

		r.Get("/api/users/me/listings", h.HandleOwnListings)
	})

	return mux
}

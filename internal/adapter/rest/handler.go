package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/listing/usecase"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/metrics"
)

type Handler struct {
	listings *usecase.ListingUsecase
	feed     *usecase.FeedUsecase
	search   *usecase.SearchUsecase
	compare  *usecase.CompareUsecase
	metrics  *metrics.Manager
	logger   logger.Logger
}

func NewHandler(
	listings *usecase.ListingUsecase,
	feed *usecase.FeedUsecase,
	search *usecase.SearchUsecase,
	compare *usecase.CompareUsecase,
	m *metrics.Manager,
	log logger.Logger,
) *Handler {
	return &Handler{
		listings: listings,
		feed:     feed,
		search:   search,
		compare:  compare,
		metrics:  m,
		logger:   log,
	}
}

// ---- listings ----

func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("page") && !query.Has("size") {
		items, err := h.feed.Feed(r.Context())
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"items":      items,
			"totalCount": len(items),
		})
		return
	}

	result, err := h.feed.FeedPage(r.Context(), parsePage(query))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	listing, err := h.listings.Detail(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, listing)
}

func (h *Handler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest("invalid request body"))
		return
	}
	listing, err := req.toDomain()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	created, err := h.listings.Create(r.Context(), actorFromContext(r), listing)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.metrics.ListingsCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	h.respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req updateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest("invalid request body"))
		return
	}
	patch, err := req.toDomain()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	updated, err := h.listings.Update(r.Context(), actorFromContext(r), id, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleUpdateListingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest("invalid request body"))
		return
	}

	updated, err := h.listings.UpdateStatus(r.Context(), actorFromContext(r), id, req.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.listings.Delete(r.Context(), actorFromContext(r), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.metrics.ListingsDeletedTotal.Inc()
	w.WriteHeader(http.StatusNoContent)
}

const maxImageUploadBytes = 10 << 20

func (h *Handler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		h.respondError(w, r, badRequest("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, r, badRequest("image file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		h.respondError(w, r, badRequest("failed to read image file"))
		return
	}
	displayOrder := 0
	if n := queryInt(r.URL.Query(), "order"); n != nil {
		displayOrder = *n
	}

	url, err := h.listings.UploadImage(r.Context(), actorFromContext(r), id, displayOrder, header.Filename, data)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func (h *Handler) HandleOwnListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.OwnListings(r.Context(), actorFromContext(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, listings)
}

// ---- per-category filter search ----

func (h *Handler) HandleRealEstateSearch(w http.ResponseWriter, r *http.Request) {
	h.filterSearch(w, r, parseRealEstateFilter(r.URL.Query()))
}

func (h *Handler) HandleVehicleSearch(w http.ResponseWriter, r *http.Request) {
	h.filterSearch(w, r, parseVehicleFilter(r.URL.Query()))
}

func (h *Handler) HandleLandSearch(w http.ResponseWriter, r *http.Request) {
	h.filterSearch(w, r, parseLandFilter(r.URL.Query()))
}

func (h *Handler) HandleWorkplaceSearch(w http.ResponseWriter, r *http.Request) {
	h.filterSearch(w, r, parseWorkplaceFilter(r.URL.Query()))
}

func (h *Handler) filterSearch(w http.ResponseWriter, r *http.Request, filter domain.Filter) {
	h.metrics.SearchesTotal.WithLabelValues("filter").Inc()
	page, err := h.listings.SearchByFilter(r.Context(), filter, parsePage(r.URL.Query()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":      page.Items,
		"totalCount": page.TotalCount,
		"totalPages": page.TotalPages(),
		"page":       page.Number,
		"size":       page.Size,
	})
}

// ---- advanced search ----

func (h *Handler) HandleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	h.metrics.SearchesTotal.WithLabelValues("advanced").Inc()
	result, err := h.search.Advanced(r.Context(), parseSearchQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleNearbySearch(w http.ResponseWriter, r *http.Request) {
	h.metrics.SearchesTotal.WithLabelValues("nearby").Inc()
	q := r.URL.Query()
	lat := queryFloat(q, "lat")
	lng := queryFloat(q, "lng")
	radius := queryFloat(q, "radius")
	if lat == nil || lng == nil || radius == nil {
		h.respondError(w, r, badRequest("lat, lng and radius are required"))
		return
	}

	result, err := h.search.Nearby(r.Context(), *lat, *lng, *radius, parsePage(q))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	suggestions, err := h.search.Suggest(r.Context(), term)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	outcome := "lookup"
	if len([]rune(strings.TrimSpace(term))) < 2 {
		outcome = "short_circuit"
	}
	h.metrics.SuggestionHitsTotal.WithLabelValues(outcome).Inc()
	h.respondJSON(w, http.StatusOK, suggestions)
}

// ---- saved searches ----

func (h *Handler) HandleSaveSearch(w http.ResponseWriter, r *http.Request) {
	var req saveSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest("invalid request body"))
		return
	}

	saved, err := h.search.SaveSearch(r.Context(), actorFromContext(r).UserID, req.Name, req.Criteria)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, saved)
}

func (h *Handler) HandleListSavedSearches(w http.ResponseWriter, r *http.Request) {
	saved, err := h.search.ListSaved(r.Context(), actorFromContext(r).UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, saved)
}

func (h *Handler) HandleReplaySavedSearch(w http.ResponseWriter, r *http.Request) {
	h.metrics.SearchesTotal.WithLabelValues("saved").Inc()
	id := chi.URLParam(r, "id")
	result, err := h.search.ReplaySaved(r.Context(), actorFromContext(r).UserID, id, parsePage(r.URL.Query()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleDeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.search.DeleteSaved(r.Context(), actorFromContext(r).UserID, id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- comparison ----

func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest("invalid request body"))
		return
	}

	h.metrics.ComparisonsTotal.Inc()
	result, err := h.compare.Compare(r.Context(), req.ListingIDs)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// ---- helpers ----

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, badRequest("listing id must be an integer")
	}
	return id, nil
}

func badRequest(msg string) error {
	return &requestError{msg: msg}
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func actorFromContext(r *http.Request) usecase.Actor {
	userID, _ := r.Context().Value(userIDCtxKey).(string)
	role, _ := r.Context().Value(userRoleCtxKey).(string)
	return usecase.Actor{UserID: userID, Admin: role == adminRole}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidComparison):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		h.logger.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		h.respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	h.respondJSON(w, status, errorResponse{Error: err.Error()})
}

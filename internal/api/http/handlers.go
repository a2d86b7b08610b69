package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-analytics/internal/domain"
	"restaurant-analytics/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.getStatus).Methods("GET")
	r.HandleFunc("/health", h.getHealth).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	api.HandleFunc("/restaurants/{restaurantId:[0-9]+}", h.getRestaurant).Methods("GET")
	api.HandleFunc("/restaurants/{restaurantId:[0-9]+}/trends", h.getTrends).Methods("GET")
	api.HandleFunc("/top-restaurants", h.getTopRestaurants).Methods("GET")
	api.HandleFunc("/orders", h.getOrders).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(endpointNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Restaurant Analytics API",
		"status":  "running",
	})
}

type healthResponse struct {
	Status           string     `json:"status"`
	SnapshotLoadedAt *time.Time `json:"snapshot_loaded_at"`
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{Status: "ok"}
	if loadedAt, ok := h.Analytics.LoadedAt(); ok {
		response.SnapshotLoadedAt = &loadedAt
	}
	respondWithJSON(w, http.StatusOK, response)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	list, err := h.Analytics.ListRestaurants(r.Context(), catalogCriteria(r.URL.Query()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		respondWithServiceError(w, domain.ErrNotFound)
		return
	}
	restaurant, err := h.Analytics.GetRestaurant(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getTrends(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		respondWithServiceError(w, domain.ErrNotFound)
		return
	}
	q := r.URL.Query()
	window, err := dateWindow(q)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	report, err := h.Analytics.RestaurantTrends(r.Context(), domain.TrendCriteria{
		RestaurantID:  id,
		DateWindow:    window,
		Chronological: q.Get("order") == "date",
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (h *Handler) getTopRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	window, err := dateWindow(q)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	limit, _ := intParam(q, "limit")

	report, err := h.Analytics.TopRestaurants(r.Context(), domain.RankCriteria{
		DateWindow: window,
		Limit:      limit,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	criteria, err := orderCriteria(r.URL.Query())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	result, err := h.Analytics.ListOrders(r.Context(), criteria)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func restaurantID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	return id, err == nil
}

// endpointNotFound names the first path segment after the optional /api
// prefix, e.g. "/api/menus/4" reports "menus".
func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")
	if path == "api" {
		path = ""
	}
	path = strings.TrimPrefix(path, "api/")
	segment, _, _ := strings.Cut(path, "/")
	respondWithError(w, http.StatusNotFound, "Endpoint not found: "+segment)
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	var loadErr *domain.LoadError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Restaurant not found")
	case errors.Is(err, domain.ErrInvalidParameter):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &loadErr):
		log.Printf("ERROR: dataset unavailable: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Dataset unavailable")
	default:
		log.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: encoding response: %v", err)
	}
}

package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"foodhub/report-svc/internal/domain"
	"foodhub/report-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/today", h.getToday).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId:[0-9]+}/analytics/today", h.getRestaurantToday).Methods("GET")
}

// getToday degrades to an empty list when the counters are unavailable.
func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	data, err := h.Analytics.Today(r.Context(), limit)
	if err != nil {
		log.Printf("Error loading today's analytics: %v", err)
		writeJSON(w, http.StatusOK, []domain.DailyStats{})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getRestaurantToday(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil || restaurantID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid restaurant id"})
		return
	}

	stats, err := h.Analytics.RestaurantToday(r.Context(), restaurantID)
	if err != nil {
		log.Printf("Error loading analytics for restaurant %d: %v", restaurantID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "analytics unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

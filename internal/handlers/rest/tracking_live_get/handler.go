package tracking_live_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/tracking"
	"scheduler/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := h.service.LiveFeed(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	entryDTOs := make([]dto.LiveEntry, len(entries))
	for i := range entries {
		entryDTOs[i] = dto.LiveEntry{
			Schedule: dto.FromScheduleEntity(&entries[i].Schedule),
			Stale:    entries[i].Stale,
		}
		if entries[i].Latest != nil {
			record := dto.FromTrackingEntity(entries[i].Latest)
			entryDTOs[i].Latest = &record
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(entryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (tracking.LiveFilter, error) {
	query := r.URL.Query()

	// лента по умолчанию показывает только активные доставки
	filter := tracking.LiveFilter{
		DistributorRef: query.Get("distributor_ref"),
		ActiveOnly:     true,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return tracking.LiveFilter{}, err
		}
		filter.Date = date
	}

	if activeStr := query.Get("active_only"); activeStr != "" {
		activeOnly, err := strconv.ParseBool(activeStr)
		if err != nil {
			return tracking.LiveFilter{}, err
		}
		filter.ActiveOnly = activeOnly
	}

	return filter, nil
}

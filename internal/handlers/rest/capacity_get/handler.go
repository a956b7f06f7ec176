package capacity_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/capacity"
	"scheduler/internal/service/suggestion"
	"scheduler/pkg/logger"
)

type Handler struct {
	log         handlerLogger
	capacity    CapacityService
	suggestions SuggestionService
}

func New(log handlerLogger, capacityService CapacityService, suggestions SuggestionService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		capacity:    capacityService,
		suggestions: suggestions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	from, to, slot, limit, err := parseQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	windows, err := h.capacity.QueryWindows(r.Context(), from, to, slot)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrInvalidTimeRange), errors.Is(err, capacity.ErrInvalidSlot):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	candidates, err := h.suggestions.Suggest(r.Context(), from, to, limit)
	if err != nil {
		switch {
		case errors.Is(err, suggestion.ErrInvalidDateRange):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CapacityResponse{
		Windows:     make([]dto.CapacityWindow, len(windows)),
		Suggestions: make([]dto.SlotSuggestion, len(candidates)),
	}
	for i, window := range windows {
		response.Windows[i] = dto.CapacityWindow{
			Date:        window.Date.Format(time.DateOnly),
			TimeSlot:    window.Slot.String(),
			SlotStart:   window.SlotStart,
			SlotEnd:     window.SlotEnd,
			MaxCapacity: window.MaxCapacity,
			Committed:   window.Committed,
			Available:   window.Available(),
		}
	}
	for i, candidate := range candidates {
		response.Suggestions[i] = dto.SlotSuggestion{
			Date:      candidate.Date.Format(time.DateOnly),
			TimeSlot:  candidate.Slot.String(),
			SlotStart: candidate.SlotStart,
			SlotEnd:   candidate.SlotEnd,
			Available: candidate.MaxCapacity - candidate.Committed,
			Suggested: candidate.Suggested,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseQuery(r *http.Request) (from, to time.Time, slot entities.TimeSlot, limit int, err error) {
	query := r.URL.Query()

	from = time.Now().UTC().Truncate(24 * time.Hour)
	if fromStr := query.Get("from"); fromStr != "" {
		from, err = time.Parse(time.DateOnly, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, "", 0, err
		}
	}

	// по умолчанию — неделя вперед
	to = from.AddDate(0, 0, 7)
	if toStr := query.Get("to"); toStr != "" {
		to, err = time.Parse(time.DateOnly, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, "", 0, err
		}
	}

	slot = entities.TimeSlot(query.Get("slot"))

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return time.Time{}, time.Time{}, "", 0, err
		}
	}

	return from, to, slot, limit, nil
}

package capacity_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/capacity"
	"scheduler/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	slotTimes SlotTimeFactory
}

func New(log handlerLogger, service Service, slotTimes SlotTimeFactory) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		slotTimes: slotTimes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var capacityDTO dto.CapacityPut
	err := json.NewDecoder(r.Body).Decode(&capacityDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, capacityDTO.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	slot := entities.TimeSlot(capacityDTO.TimeSlot)
	slotStart, slotEnd, err := h.resolveBounds(date, slot, capacityDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	window, err := h.service.SetMaxCapacity(r.Context(), date, slot, slotStart, slotEnd, capacityDTO.MaxCapacity)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrInvalidSlot),
			errors.Is(err, capacity.ErrInvalidTimeRange),
			errors.Is(err, capacity.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, capacity.ErrCapacityBelowCommitted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	windowDTO := dto.CapacityWindow{
		Date:        window.Date.Format(time.DateOnly),
		TimeSlot:    window.Slot.String(),
		SlotStart:   window.SlotStart,
		SlotEnd:     window.SlotEnd,
		MaxCapacity: window.MaxCapacity,
		Committed:   window.Committed,
		Available:   window.Available(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(windowDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) resolveBounds(date time.Time, slot entities.TimeSlot, capacityDTO dto.CapacityPut) (time.Time, time.Time, error) {
	if slot != entities.SlotCustom {
		start, end := h.slotTimes.Bounds(date, slot)
		return start, end, nil
	}

	start, err := time.Parse("15:04", capacityDTO.CustomStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("15:04", capacityDTO.CustomEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return onDate(date, start), onDate(date, end), nil
}

func onDate(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
}

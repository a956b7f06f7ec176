package tracking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"scheduler/internal/entities"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/schedule"
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
	var trackingDTO dto.TrackingCreate
	err := json.NewDecoder(r.Body).Decode(&trackingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := h.service.Record(r.Context(), tracking.RecordRequest{
		ScheduleID: trackingDTO.ScheduleID,
		Status:     entities.ScheduleStatus(trackingDTO.Status),
		Lat:        trackingDTO.Lat,
		Lng:        trackingDTO.Lng,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidStatus),
			errors.Is(err, tracking.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrScheduleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrScheduleTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	recordDTO := dto.FromTrackingEntity(record)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(recordDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package schedule_reschedule_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"scheduler/internal/entities"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/capacity"
	"scheduler/internal/service/schedule"
	"scheduler/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	tokens  TokenService
}

func New(log handlerLogger, service Service, tokens TokenService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		tokens:  tokens,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var rescheduleDTO dto.ScheduleReschedule
	err = json.NewDecoder(r.Body).Decode(&rescheduleDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req, err := toRescheduleRequest(id, rescheduleDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduleEntity, err := h.service.Reschedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidSlot),
			errors.Is(err, schedule.ErrInvalidCustomRange),
			errors.Is(err, capacity.ErrInvalidSlot),
			errors.Is(err, capacity.ErrInvalidTimeRange):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrScheduleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, schedule.ErrInvalidTransition),
			errors.Is(err, capacity.ErrCapacityExceeded),
			errors.Is(err, capacity.ErrTimeConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, schedule.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ScheduleCreateResponse{
		Schedule:         dto.FromScheduleEntity(scheduleEntity),
		ConfirmationLink: h.tokens.ConfirmationLink(scheduleEntity.ConfirmationToken),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toRescheduleRequest(id int64, rescheduleDTO dto.ScheduleReschedule) (schedule.RescheduleRequest, error) {
	date, err := time.Parse(time.DateOnly, rescheduleDTO.Date)
	if err != nil {
		return schedule.RescheduleRequest{}, err
	}

	req := schedule.RescheduleRequest{
		ID:     id,
		Date:   date,
		Slot:   entities.TimeSlot(rescheduleDTO.TimeSlot),
		Reason: rescheduleDTO.Reason,
	}

	if rescheduleDTO.CustomStart != "" {
		req.CustomStart, err = time.Parse("15:04", rescheduleDTO.CustomStart)
		if err != nil {
			return schedule.RescheduleRequest{}, err
		}
	}
	if rescheduleDTO.CustomEnd != "" {
		req.CustomEnd, err = time.Parse("15:04", rescheduleDTO.CustomEnd)
		if err != nil {
			return schedule.RescheduleRequest{}, err
		}
	}

	return req, nil
}

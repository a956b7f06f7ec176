package schedule_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/schedule"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var cancelDTO dto.ScheduleCancel
	err = json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduleEntity, err := h.service.Cancel(r.Context(), id, cancelDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidCancelReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrScheduleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, schedule.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, schedule.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	scheduleDTO := dto.FromScheduleEntity(scheduleEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(scheduleDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

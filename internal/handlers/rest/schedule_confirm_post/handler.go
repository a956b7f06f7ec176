package schedule_confirm_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/schedule"
	"scheduler/internal/service/token"
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
	confirmationToken := mux.Vars(r)["token"]

	// тело опционально: подтверждение по ссылке из письма идет без него
	var confirmDTO dto.ScheduleConfirm
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduleEntity, err := h.service.Confirm(r.Context(), confirmationToken, confirmDTO.Notes)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenInvalid):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, token.ErrTokenExpired):
			w.WriteHeader(http.StatusGone)
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

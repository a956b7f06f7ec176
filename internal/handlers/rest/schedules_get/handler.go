package schedules_get

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/handlers/rest/dto"
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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduleEntities, err := h.service.ListSchedules(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	scheduleDTOs := make([]dto.Schedule, len(scheduleEntities))
	for i := range scheduleEntities {
		scheduleDTOs[i] = dto.FromScheduleEntity(&scheduleEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(scheduleDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(query url.Values) (entities.ScheduleFilter, error) {
	filter := entities.ScheduleFilter{
		OrderRef:       query.Get("order_ref"),
		DistributorRef: query.Get("distributor_ref"),
		Slot:           entities.TimeSlot(query.Get("slot")),
		DeliveryType:   entities.DeliveryType(query.Get("type")),
	}

	if statuses := query.Get("status"); statuses != "" {
		for _, status := range strings.Split(statuses, ",") {
			filter.Statuses = append(filter.Statuses, entities.ScheduleStatus(status))
		}
	}

	var err error
	if from := query.Get("from"); from != "" {
		filter.DateFrom, err = time.Parse(time.DateOnly, from)
		if err != nil {
			return entities.ScheduleFilter{}, err
		}
	}
	if to := query.Get("to"); to != "" {
		filter.DateTo, err = time.Parse(time.DateOnly, to)
		if err != nil {
			return entities.ScheduleFilter{}, err
		}
	}

	return filter, nil
}

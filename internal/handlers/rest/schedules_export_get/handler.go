package schedules_export_get

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/handlers/rest/dto"
	"scheduler/pkg/logger"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

var csvHeader = []string{
	"id", "order_ref", "date", "time_slot", "start_at", "end_at",
	"delivery_type", "priority", "status", "distributor_ref",
	"contact_person", "contact_phone", "contact_address",
	"delivery_fee_cents", "created_at",
}

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
	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatCSV {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

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

	if format == formatCSV {
		h.writeCSV(w, scheduleEntities)
		return
	}
	h.writeJSON(w, scheduleEntities)
}

func (h *Handler) writeJSON(w http.ResponseWriter, schedules []entities.DeliverySchedule) {
	scheduleDTOs := make([]dto.Schedule, len(schedules))
	for i := range schedules {
		scheduleDTOs[i] = dto.FromScheduleEntity(&schedules[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="schedules.json"`)
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(scheduleDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON export")
	}
}

func (h *Handler) writeCSV(w http.ResponseWriter, schedules []entities.DeliverySchedule) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="schedules.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write CSV export header")
		return
	}

	for i := range schedules {
		if err := writer.Write(toCSVRow(&schedules[i])); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("write CSV export row")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("flush CSV export")
	}
}

func toCSVRow(schedule *entities.DeliverySchedule) []string {
	return []string{
		strconv.FormatInt(schedule.ID, 10),
		schedule.OrderRef,
		schedule.ScheduledDate.Format(time.DateOnly),
		schedule.TimeSlot.String(),
		schedule.StartAt.Format(time.RFC3339),
		schedule.EndAt.Format(time.RFC3339),
		schedule.DeliveryType.String(),
		schedule.Priority.String(),
		schedule.Status.String(),
		schedule.DistributorRef,
		schedule.Contact.Person,
		schedule.Contact.Phone,
		schedule.Contact.Address,
		strconv.FormatInt(schedule.DeliveryFeeCents, 10),
		schedule.CreatedAt.Format(time.RFC3339),
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

package analytics_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"scheduler/internal/handlers/rest/dto"
	"scheduler/internal/service/analytics"
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
	query := r.URL.Query()

	from, err := time.Parse(time.DateOnly, query.Get("from"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	to, err := time.Parse(time.DateOnly, query.Get("to"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	report, err := h.service.Report(r.Context(), analytics.ReportRequest{
		From:           from,
		To:             to,
		DistributorRef: query.Get("distributor_ref"),
	})
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reportDTO := dto.DeliveryReport{
		From:           report.From.Format(time.DateOnly),
		To:             report.To.Format(time.DateOnly),
		DistributorRef: report.DistributorRef,
		Overall:        dto.FromStatsEntity(report.Overall),
		BySlot:         make(map[string]dto.DeliveryStats, len(report.BySlot)),
		ByType:         make(map[string]dto.DeliveryStats, len(report.ByType)),
	}
	for slot, stats := range report.BySlot {
		reportDTO.BySlot[slot.String()] = dto.FromStatsEntity(stats)
	}
	for deliveryType, stats := range report.ByType {
		reportDTO.ByType[deliveryType.String()] = dto.FromStatsEntity(stats)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reportDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

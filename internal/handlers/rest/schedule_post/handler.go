package schedule_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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
	var createDTO dto.ScheduleCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req, err := toCreateRequest(createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduleEntity, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidOrderRef),
			errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidSlot),
			errors.Is(err, schedule.ErrInvalidCustomRange),
			errors.Is(err, schedule.ErrInvalidDeliveryType),
			errors.Is(err, schedule.ErrInvalidPriority),
			errors.Is(err, schedule.ErrInvalidFee),
			errors.Is(err, capacity.ErrInvalidSlot),
			errors.Is(err, capacity.ErrInvalidTimeRange):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrOrderAlreadyScheduled),
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

func toCreateRequest(createDTO dto.ScheduleCreate) (schedule.CreateRequest, error) {
	date, err := time.Parse(time.DateOnly, createDTO.Date)
	if err != nil {
		return schedule.CreateRequest{}, err
	}

	req := schedule.CreateRequest{
		OrderRef:     createDTO.OrderRef,
		Date:         date,
		Slot:         entities.TimeSlot(createDTO.TimeSlot),
		DeliveryType: entities.DeliveryType(createDTO.DeliveryType),
		Priority:     entities.Priority(createDTO.Priority),
		Contact: entities.Contact{
			Person:  createDTO.Contact.Person,
			Phone:   createDTO.Contact.Phone,
			Email:   createDTO.Contact.Email,
			Address: createDTO.Contact.Address,
		},
		DeliveryFeeCents: createDTO.DeliveryFeeCents,
		CustomerNotes:    createDTO.CustomerNotes,
		Instructions:     createDTO.Instructions,
	}

	if createDTO.DeliveryType == "" {
		req.DeliveryType = entities.DefaultDeliveryType
	}
	if createDTO.Priority == "" {
		req.Priority = entities.DefaultPriority
	}

	if createDTO.CustomStart != "" {
		req.CustomStart, err = time.Parse("15:04", createDTO.CustomStart)
		if err != nil {
			return schedule.CreateRequest{}, err
		}
	}
	if createDTO.CustomEnd != "" {
		req.CustomEnd, err = time.Parse("15:04", createDTO.CustomEnd)
		if err != nil {
			return schedule.CreateRequest{}, err
		}
	}

	return req, nil
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_get_test
package capacity_get

import (
	"context"
	"time"

	"scheduler/internal/entities"
	"scheduler/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type CapacityService interface {
	QueryWindows(ctx context.Context, from, to time.Time, slot entities.TimeSlot) ([]entities.CapacityWindow, error)
}

type SuggestionService interface {
	Suggest(ctx context.Context, from, to time.Time, limit int) ([]entities.CandidateSlot, error)
}

package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scheduler/internal/entities"
)

var ErrInvalidPeriod = errors.New("invalid report period")

const (
	completionWeight = 0.7
	missedWeight     = 0.3
)

type Analytics struct {
	schedules ScheduleReader
}

func New(schedules ScheduleReader) *Analytics {
	return &Analytics{schedules: schedules}
}

type ReportRequest struct {
	From           time.Time
	To             time.Time
	DistributorRef string
}

// Report агрегирует статистику доставок за период, с разбивкой по
// слотам и типам доставки.
func (a *Analytics) Report(ctx context.Context, req ReportRequest) (*entities.DeliveryReport, error) {
	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		return nil, ErrInvalidPeriod
	}

	schedules, err := a.schedules.List(ctx, entities.ScheduleFilter{
		DateFrom:       req.From,
		DateTo:         req.To,
		DistributorRef: req.DistributorRef,
	})
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	report := &entities.DeliveryReport{
		From:           req.From,
		To:             req.To,
		DistributorRef: req.DistributorRef,
		Overall:        computeStats(schedules),
		BySlot:         make(map[entities.TimeSlot]entities.DeliveryStats),
		ByType:         make(map[entities.DeliveryType]entities.DeliveryStats),
	}

	bySlot := make(map[entities.TimeSlot][]entities.DeliverySchedule)
	byType := make(map[entities.DeliveryType][]entities.DeliverySchedule)
	for _, sched := range schedules {
		bySlot[sched.TimeSlot] = append(bySlot[sched.TimeSlot], sched)
		byType[sched.DeliveryType] = append(byType[sched.DeliveryType], sched)
	}
	for slot, group := range bySlot {
		report.BySlot[slot] = computeStats(group)
	}
	for deliveryType, group := range byType {
		report.ByType[deliveryType] = computeStats(group)
	}
	return report, nil
}

func computeStats(schedules []entities.DeliverySchedule) entities.DeliveryStats {
	stats := entities.DeliveryStats{Total: int64(len(schedules))}
	for _, sched := range schedules {
		switch sched.Status {
		case entities.StatusDelivered:
			stats.Delivered++
		case entities.StatusMissed:
			stats.Missed++
		case entities.StatusCancelled:
			stats.Cancelled++
		}
		if sched.Status != entities.StatusCancelled {
			stats.TotalRevenueCents += sched.DeliveryFeeCents
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Delivered) / float64(stats.Total) * 100
		stats.MissedRate = float64(stats.Missed) / float64(stats.Total) * 100
		stats.PerformanceScore = clamp(
			stats.CompletionRate*completionWeight+(100-stats.MissedRate)*missedWeight,
			0, 100,
		)
	}
	return stats
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package suggestion

import (
	"context"
	"fmt"
	"sort"
	"time"

	"scheduler/internal/entities"
)

const (
	// DefaultLimit — размер выдачи, когда вызывающая сторона не задала свой.
	DefaultLimit = 5

	// suggestedThreshold — слот помечается рекомендованным ниже этой занятости.
	suggestedThreshold = 0.5
)

var slotOrder = map[entities.TimeSlot]int{
	entities.SlotMorning:   0,
	entities.SlotAfternoon: 1,
	entities.SlotEvening:   2,
}

type Suggestion struct {
	capacity   CapacityReader
	slotTimes  SlotTimeFactory
	defaultMax int32
}

func New(capacity CapacityReader, slotTimes SlotTimeFactory, defaultMax int32) *Suggestion {
	return &Suggestion{
		capacity:   capacity,
		slotTimes:  slotTimes,
		defaultMax: defaultMax,
	}
}

// Suggest перечисляет стандартные слоты диапазона дат, сортирует по
// возрастанию занятости (при равенстве — более ранняя дата, затем более
// ранний слот) и возвращает не более limit кандидатов. Полностью
// заполненные окна в выдачу не попадают.
func (s *Suggestion) Suggest(ctx context.Context, from, to time.Time, limit int) ([]entities.CandidateSlot, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return nil, ErrInvalidDateRange
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	windows, err := s.capacity.QueryWindows(ctx, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("query capacity windows: %w", err)
	}

	type key struct {
		date string
		slot entities.TimeSlot
	}
	index := make(map[key]entities.CapacityWindow, len(windows))
	for _, w := range windows {
		if w.Slot == entities.SlotCustom {
			// кастомные окна не предлагаются как альтернативы
			continue
		}
		index[key{w.Date.Format(time.DateOnly), w.Slot}] = w
	}

	var candidates []entities.CandidateSlot
	for day := dateOnly(from); !day.After(dateOnly(to)); day = day.AddDate(0, 0, 1) {
		for _, slot := range entities.StandardSlots {
			committed := int32(0)
			maxCapacity := s.defaultMax
			start, end := s.slotTimes.Bounds(day, slot)

			if w, ok := index[key{day.Format(time.DateOnly), slot}]; ok {
				committed = w.Committed
				maxCapacity = w.MaxCapacity
				start, end = w.SlotStart, w.SlotEnd
			}

			if committed >= maxCapacity {
				continue
			}

			ratio := float64(committed) / float64(maxCapacity)
			candidates = append(candidates, entities.CandidateSlot{
				Date:           day,
				Slot:           slot,
				SlotStart:      start,
				SlotEnd:        end,
				MaxCapacity:    maxCapacity,
				Committed:      committed,
				OccupancyRatio: ratio,
				Suggested:      ratio < suggestedThreshold,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.OccupancyRatio != b.OccupancyRatio {
			return a.OccupancyRatio < b.OccupancyRatio
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return slotOrder[a.Slot] < slotOrder[b.Slot]
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

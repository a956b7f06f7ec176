package trackingcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"scheduler/internal/entities"
)

const keyPrefix = "tracking:latest:"

// Cache хранит последний пинг расписания в redis с TTL; источник
// истины — tracking_records, кеш только срезает чтения live-ленты.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

type recordPayload struct {
	ID         int64    `json:"id"`
	ScheduleID int64    `json:"schedule_id"`
	Status     string   `json:"status"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	RecordedAt int64    `json:"recorded_at"`
}

func (c *Cache) SetLatest(ctx context.Context, record entities.TrackingRecord) error {
	payload, err := json.Marshal(recordPayload{
		ID:         record.ID,
		ScheduleID: record.ScheduleID,
		Status:     record.Status.String(),
		Lat:        record.Lat,
		Lng:        record.Lng,
		RecordedAt: record.RecordedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("marshal tracking record: %w", err)
	}

	err = c.client.Set(ctx, key(record.ScheduleID), payload, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("set tracking cache: %w", err)
	}
	return nil
}

// GetLatest возвращает nil, nil при промахе.
func (c *Cache) GetLatest(ctx context.Context, scheduleID int64) (*entities.TrackingRecord, error) {
	raw, err := c.client.Get(ctx, key(scheduleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tracking cache: %w", err)
	}

	var payload recordPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal tracking record: %w", err)
	}

	return &entities.TrackingRecord{
		ID:         payload.ID,
		ScheduleID: payload.ScheduleID,
		Status:     entities.ScheduleStatus(payload.Status),
		Lat:        payload.Lat,
		Lng:        payload.Lng,
		RecordedAt: time.Unix(0, payload.RecordedAt).UTC(),
	}, nil
}

func key(scheduleID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, scheduleID)
}

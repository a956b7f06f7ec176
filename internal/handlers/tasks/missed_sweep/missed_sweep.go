package missed_sweep

import (
	"context"
	"time"

	"scheduler/pkg/logger"
)

type Service interface {
	SweepMissed(ctx context.Context) (int64, error)
}

// MissedSweep периодически переводит расписания с истекшим окном
// доставки в missed.
type MissedSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMissedSweep(log logger.Logger, service Service, interval time.Duration) *MissedSweep {
	return &MissedSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MissedSweep) TTL() time.Duration {
	return m.interval
}

func (m *MissedSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	marked, err := m.service.SweepMissed(ctxWithTimeout)

	if marked > 0 {
		m.log.With(
			logger.NewField("missed_schedules", marked),
		).Info("missed sweep")
	}

	return err
}

func (m *MissedSweep) Info() string {
	return "missed schedules sweep"
}

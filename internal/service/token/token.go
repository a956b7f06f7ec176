package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/service/schedule"
)

type Service struct {
	repository Repository
	schedules  ScheduleConfirmer
	ttl        time.Duration
	baseURL    string
}

// ttl == 0 отключает проверку срока действия токена.
func New(repository Repository, schedules ScheduleConfirmer, ttl time.Duration, baseURL string) *Service {
	return &Service{
		repository: repository,
		schedules:  schedules,
		ttl:        ttl,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Resolve находит расписание по токену подтверждения.
func (s *Service) Resolve(ctx context.Context, token string) (*entities.DeliverySchedule, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	sched, err := s.repository.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("get schedule by token: %w", err)
	}

	if s.ttl > 0 && time.Now().UTC().After(sched.CreatedAt.Add(s.ttl)) {
		return nil, ErrTokenExpired
	}
	return sched, nil
}

// Confirm подтверждает доставку по токену. Повторное подтверждение
// возвращает уже подтвержденное расписание без ошибки.
func (s *Service) Confirm(ctx context.Context, token, notes string) (*entities.DeliverySchedule, error) {
	sched, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if sched.Status == entities.StatusConfirmed {
		return sched, nil
	}

	confirmed, err := s.schedules.Confirm(ctx, sched.ID, notes)
	if err != nil {
		// гонка с параллельным подтверждением по тому же токену
		if errors.Is(err, schedule.ErrInvalidTransition) {
			current, getErr := s.schedules.GetSchedule(ctx, sched.ID)
			if getErr == nil && current.Status == entities.StatusConfirmed {
				return current, nil
			}
		}
		return nil, err
	}
	return confirmed, nil
}

// ConfirmationLink собирает публичную ссылку подтверждения.
func (s *Service) ConfirmationLink(token string) string {
	return fmt.Sprintf("%s/delivery/confirm/%s", s.baseURL, token)
}

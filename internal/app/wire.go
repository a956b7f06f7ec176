//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	orderGateway "scheduler/internal/gateway/http/order"
	"scheduler/internal/handlers/rest/analytics_get"
	"scheduler/internal/handlers/rest/capacity_get"
	"scheduler/internal/handlers/rest/capacity_put"
	"scheduler/internal/handlers/rest/schedule_assign_post"
	"scheduler/internal/handlers/rest/schedule_cancel_post"
	"scheduler/internal/handlers/rest/schedule_complete_post"
	"scheduler/internal/handlers/rest/schedule_confirm_post"
	"scheduler/internal/handlers/rest/schedule_get"
	"scheduler/internal/handlers/rest/schedule_post"
	"scheduler/internal/handlers/rest/schedule_reschedule_post"
	"scheduler/internal/handlers/rest/schedule_start_post"
	"scheduler/internal/handlers/rest/schedules_export_get"
	"scheduler/internal/handlers/rest/schedules_get"
	"scheduler/internal/handlers/rest/tracking_history_get"
	"scheduler/internal/handlers/rest/tracking_live_get"
	"scheduler/internal/handlers/rest/tracking_post"
	"scheduler/internal/handlers/tasks/missed_sweep"
	"scheduler/internal/pkg/config"
	"scheduler/internal/pkg/factory/order_handle"
	"scheduler/internal/pkg/factory/slot_times"

	capacityRepo "scheduler/internal/repository/capacity"
	scheduleRepo "scheduler/internal/repository/schedule"
	trackingRepo "scheduler/internal/repository/tracking"
	"scheduler/internal/repository/trackingcache"
	analyticsService "scheduler/internal/service/analytics"
	capacityService "scheduler/internal/service/capacity"
	orderService "scheduler/internal/service/order"
	scheduleService "scheduler/internal/service/schedule"
	suggestionService "scheduler/internal/service/suggestion"
	tokenService "scheduler/internal/service/token"
	trackingService "scheduler/internal/service/tracking"

	"scheduler/pkg/background"
	"scheduler/pkg/logger"
	"scheduler/pkg/querier"
	"scheduler/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceSchedule   ServiceSchedule
	ServiceToken      ServiceToken
	ServiceCapacity   ServiceCapacity
	ServiceSuggestion ServiceSuggestion
	ServiceTracking   ServiceTracking
	ServiceAnalytics  ServiceAnalytics
	SlotTimes         SlotTimes
	BackgroundWorkers *background.Worker
}

type ServiceSchedule interface {
	schedule_post.Service
	schedule_get.Service
	schedules_get.Service
	schedules_export_get.Service
	schedule_cancel_post.Service
	schedule_reschedule_post.Service
	schedule_assign_post.Service
	schedule_start_post.Service
	schedule_complete_post.Service
}

type ServiceToken interface {
	schedule_confirm_post.Service
	schedule_post.TokenService
}

type ServiceCapacity interface {
	capacity_get.CapacityService
	capacity_put.Service
}

type ServiceSuggestion interface {
	capacity_get.SuggestionService
}

type ServiceTracking interface {
	tracking_post.Service
	tracking_live_get.Service
	tracking_history_get.Service
}

type ServiceAnalytics interface {
	analytics_get.Service
}

type SlotTimes interface {
	capacity_put.SlotTimeFactory
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideScheduleRepository,
		provideCapacityRepository,
		provideTrackingRepository,
		provideTrackingCache,

		slot_times.New,
		provideTokenGenerator,

		provideServiceCapacity,
		provideServiceSuggestion,
		provideServiceTracking,
		provideServiceSchedule,
		provideServiceToken,
		provideServiceAnalytics,

		provideMissedSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceToken), new(*tokenService.Service)),
		wire.Bind(new(ServiceCapacity), new(*capacityService.Capacity)),
		wire.Bind(new(ServiceSuggestion), new(*suggestionService.Suggestion)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceAnalytics), new(*analyticsService.Analytics)),
		wire.Bind(new(SlotTimes), new(*slot_times.SlotTimeFactory)),

		wire.Bind(new(missed_sweep.Service), new(*scheduleService.Schedule)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideScheduleRepository,
		provideCapacityRepository,
		provideTrackingRepository,
		provideTrackingCache,

		slot_times.New,
		provideTokenGenerator,

		provideServiceCapacity,
		provideServiceTracking,
		provideServiceSchedule,

		provideHTTPClient,
		provideOrderGateway,
		provideStatusHandlerFabric,
		provideOrderService,

		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideCapacityRepository(querier *querier.Querier) *capacityRepo.Repository {
	return capacityRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideTrackingCache(redisClient *goredis.Client, cfg *config.Config) *trackingcache.Cache {
	return trackingcache.New(redisClient, cfg.Tracking.CacheTTL)
}

func provideTokenGenerator() *tokenService.Generator {
	return tokenService.NewGenerator()
}

func provideServiceCapacity(
	repository *capacityRepo.Repository,
	schedules *scheduleRepo.Repository,
	cfg *config.Config,
) *capacityService.Capacity {
	return capacityService.New(repository, schedules, cfg.Scheduling.DefaultWindowCapacity)
}

func provideServiceSuggestion(
	capacity *capacityService.Capacity,
	slotTimes *slot_times.SlotTimeFactory,
	cfg *config.Config,
) *suggestionService.Suggestion {
	return suggestionService.New(capacity, slotTimes, cfg.Scheduling.DefaultWindowCapacity)
}

func provideServiceTracking(
	repository *trackingRepo.Repository,
	schedules *scheduleRepo.Repository,
	cache *trackingcache.Cache,
	cfg *config.Config,
	log logger.Logger,
) *trackingService.Tracking {
	return trackingService.New(repository, schedules, cache, cfg.Tracking.StalenessThreshold, log)
}

func provideServiceSchedule(
	repository *scheduleRepo.Repository,
	capacity *capacityService.Capacity,
	tokens *tokenService.Generator,
	tracking *trackingService.Tracking,
	slotTimes *slot_times.SlotTimeFactory,
	txManager *tx.Manager,
) *scheduleService.Schedule {
	return scheduleService.New(repository, capacity, tokens, tracking, slotTimes, txManager)
}

func provideServiceToken(
	repository *scheduleRepo.Repository,
	schedules *scheduleService.Schedule,
	cfg *config.Config,
) *tokenService.Service {
	return tokenService.New(repository, schedules, cfg.Scheduling.TokenTTL, cfg.Scheduling.ConfirmBaseURL)
}

func provideServiceAnalytics(repository *scheduleRepo.Repository) *analyticsService.Analytics {
	return analyticsService.New(repository)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.MissedSweepInterval)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func provideOrderGateway(client *http.Client, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(client, cfg.OrderService.HTTPHost)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	orderGateway *orderGateway.OrderGateway,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(orderGateway, handlerFactory)
}

func provideStatusHandlerFabric(scheduleService *scheduleService.Schedule) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(scheduleService)
}

func provideMissedSweepTask(
	log logger.Logger,
	scheduleService missed_sweep.Service,
	interval SweepInterval,
) *missed_sweep.MissedSweep {
	return missed_sweep.NewMissedSweep(log, scheduleService, time.Duration(interval))
}

func provideTaskList(
	missedSweepTask *missed_sweep.MissedSweep,
) []background.Task {
	return []background.Task{
		missedSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

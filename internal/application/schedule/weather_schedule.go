package schedule

import (
	"context"
	"fmt"
	"time"

	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/widget"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const refreshJobName = "weather-auto-refresh"

// WeatherRefresher periodically rebuilds the dashboard and publishes each
// city's snapshot through a queue.Sender.
type WeatherRefresher struct {
	scheduler   gocron.Scheduler
	useCase     widget.UseCase
	sender      queue.Sender
	destination string
	interval    time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewWeatherRefresher creates a refresher publishing to destination every interval
func NewWeatherRefresher(useCase widget.UseCase, sender queue.Sender, destination string, interval time.Duration) (*WeatherRefresher, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", interval)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &WeatherRefresher{
		scheduler:   scheduler,
		useCase:     useCase,
		sender:      sender,
		destination: destination,
		interval:    interval,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Start schedules the refresh job, running it once right away.
// A run still in progress when the next one is due makes that one skip.
func (r *WeatherRefresher) Start() error {
	_, err := r.scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(r.ExecuteScheduledTask),
		gocron.WithName(refreshJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", refreshJobName, err)
	}

	r.scheduler.Start()
	log.Info(msg.GetMessage("refresh.scheduled", r.interval))
	return nil
}

// ExecuteScheduledTask runs one refresh and logs its outcome
func (r *WeatherRefresher) ExecuteScheduledTask() {
	requestID := uuid.NewString()
	if err := r.Refresh(r.ctx, requestID); err != nil {
		log.Error("Auto-refresh failed", zap.String("request_id", requestID), zap.Error(err))
	}
}

// Refresh builds the dashboard and publishes one message per fetched snapshot.
// Cities whose weather failed are logged and not published.
func (r *WeatherRefresher) Refresh(ctx context.Context, requestID string) error {
	dashboard, err := r.useCase.Dashboard(ctx)
	if err != nil {
		return err
	}
	log.Info(msg.GetMessage("refresh.start", len(dashboard.Cities)), zap.String("request_id", requestID))

	for cityID, reason := range dashboard.Errors {
		log.Warn("Skipping city without weather",
			zap.String("request_id", requestID),
			zap.String("city_id", cityID),
			zap.String("reason", reason))
	}

	fetchedAt := time.Now().Unix()
	messages := make([]queue.BatchMessage, 0, len(dashboard.CurrentWeather))
	for _, city := range dashboard.Cities {
		snapshot, ok := dashboard.CurrentWeather[city.ID]
		if !ok {
			continue
		}
		messages = append(messages, queue.BatchMessage{
			MessageID: uuid.NewString(),
			Body: model.SnapshotMessage{
				RequestID: requestID,
				CityID:    city.ID,
				Weather:   snapshot,
				FetchedAt: fetchedAt,
			},
		})
	}
	if len(messages) == 0 {
		log.Info(msg.GetMessage("refresh.end", 0, 0), zap.String("request_id", requestID))
		return nil
	}

	result, err := r.sender.SendMessageBatch(ctx, r.destination, messages)
	if err != nil {
		return fmt.Errorf("failed to publish snapshots: %w", err)
	}
	log.Info(msg.GetMessage("refresh.end", len(result.Successful), len(result.Failed)), zap.String("request_id", requestID))
	return nil
}

// Stop cancels a running refresh and shuts the scheduler down
func (r *WeatherRefresher) Stop() error {
	r.cancel()
	return r.scheduler.Shutdown()
}

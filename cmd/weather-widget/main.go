package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"weather-widget/configs"
	"weather-widget/docs"
	"weather-widget/internal/application/controller"
	"weather-widget/internal/application/middleware"
	"weather-widget/internal/application/schedule"
	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/internal/domain/gateway/storage"
	"weather-widget/internal/domain/usecase/cities"
	"weather-widget/internal/domain/usecase/health"
	"weather-widget/internal/domain/usecase/weather"
	"weather-widget/internal/domain/usecase/widget"
	"weather-widget/internal/infra/aws"
	"weather-widget/internal/infra/database/gorm"
	"weather-widget/pkg/http"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
	"weather-widget/pkg/redis"
	"weather-widget/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Weather Widget API
// @version 1.0
// @description Current weather, city search and the persisted city selection of an embeddable weather widget.
// @BasePath /weather-widget
func main() {
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	widgetConfig, err := widget.ParseWidgetConfig(map[string]string{
		widget.AttrAPIKey:      resource.GetString("app.openweather.api-key"),
		widget.AttrCities:      resource.GetStringOrDefault("app.widget.cities", entity.DefaultCityNames),
		widget.AttrAutoRefresh: resource.GetString("app.widget.auto-refresh"),
		widget.AttrPosition:    resource.GetString("app.widget.position"),
	})
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", err))
	}

	// Init infra
	var redisClient *redis.Client
	lazyRedis := func() *redis.Client {
		if redisClient == nil {
			redisClient = newRedisClient()
		}
		return redisClient
	}

	store := newKeyValueStore(lazyRedis)
	sender := newSender(ctx, lazyRedis)

	clientOptions := http.ClientOptions{
		ReadTimeout: resource.GetDuration("app.openweather.read-timeout"),
		Logger:      http.NewZapLogger(log.Base()),
	}
	weatherGateway, err := api.NewWeatherGateway(widgetConfig.APIKey,
		resource.GetString("app.openweather.weather-url"),
		resource.GetString("app.openweather.geo-url"),
		clientOptions)
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", err))
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, newLocator(clientOptions))
	cityStore := cities.NewCityStore(store)
	widgetUseCase := widget.NewWidgetUseCase(weatherUseCase, cityStore)
	healthUseCase := health.NewHealthUseCase(store)

	if _, err := widgetUseCase.Bootstrap(ctx, widgetConfig.Cities); err != nil {
		log.Error("Failed to seed initial cities", zap.Error(err))
	}

	// Init Controller
	e := echo.New()
	e.HideBanner = true
	e.Validator = controller.NewRequestValidator()
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	group := e.Group(contextPath)
	docs.SwaggerInfo.BasePath = contextPath

	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	controller.NewCityController(group, cityStore, widgetUseCase).InitCityRoutes()
	controller.NewWidgetController(group, widgetUseCase).InitWidgetRoutes()
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	refresher, err := schedule.NewWeatherRefresher(widgetUseCase, sender, resource.GetString("app.queue.name"), widgetConfig.AutoRefresh)
	if err != nil {
		log.Fatal("Failed to create auto-refresh scheduler", zap.Error(err))
	}
	if err := refresher.Start(); err != nil {
		log.Fatal("Failed to start auto-refresh scheduler", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("Server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := refresher.Stop(); err != nil {
		log.Error("Failed to stop auto-refresh scheduler", zap.Error(err))
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

func newRedisClient() *redis.Client {
	config := redis.DefaultConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Failed to create redis client", zap.Error(err))
	}
	return client
}

func newKeyValueStore(redisClient func() *redis.Client) storage.KeyValueStore {
	switch backend := resource.GetString("app.storage.backend"); backend {
	case "", "memory":
		return storage.NewMemoryStore()
	case "redis":
		return storage.NewRedisStore(redisClient())
	case "sql":
		db, err := gorm.Open()
		if err != nil {
			log.Fatal("Failed to open database", zap.Error(err))
		}
		store, err := storage.NewGormStore(db)
		if err != nil {
			log.Fatal("Failed to prepare storage table", zap.Error(err))
		}
		return store
	default:
		log.Fatalf("Unsupported storage backend %q", backend)
		return nil
	}
}

func newSender(ctx context.Context, redisClient func() *redis.Client) queue.Sender {
	switch publisher := resource.GetString("app.queue.publisher"); publisher {
	case "", "log":
		return queue.NewLogSender()
	case "redis":
		return redisChannelSender{RedisSender: queue.NewRedisSender(redisClient()), channel: resource.GetString("app.queue.redis-channel")}
	case "sqs":
		cfg, err := aws.LoadConfig(ctx)
		if err != nil {
			log.Fatal("Failed to load AWS configuration", zap.Error(err))
		}
		return aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg))
	default:
		log.Fatalf("Unsupported queue publisher %q", publisher)
		return nil
	}
}

// redisChannelSender publishes to the configured channel whatever queue name it is given
type redisChannelSender struct {
	*queue.RedisSender
	channel string
}

func (s redisChannelSender) SendMessageBatch(ctx context.Context, _ string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	return s.RedisSender.SendMessageBatch(ctx, s.channel, messages)
}

func (s redisChannelSender) SendMessage(ctx context.Context, _ string, body any) error {
	return s.RedisSender.SendMessage(ctx, s.channel, body)
}

func newLocator(clientOptions http.ClientOptions) api.Locator {
	switch provider := resource.GetString("app.geolocation.provider"); provider {
	case "ip":
		return api.NewIPLocator(resource.GetString("app.geolocation.ip-url"), clientOptions)
	case "static":
		return api.NewStaticLocator(entity.Position{
			Lat: resource.GetFloat64("app.geolocation.static-lat"),
			Lon: resource.GetFloat64("app.geolocation.static-lon"),
		})
	default:
		return api.NewUnsupportedLocator()
	}
}

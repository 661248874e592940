package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/skyweather/internal/config"
	handlers "github.com/Nazarious-ucu/skyweather/internal/handlers/http"
	"github.com/Nazarious-ucu/skyweather/internal/models"
	"github.com/Nazarious-ucu/skyweather/internal/services/cache"
	loggerT "github.com/Nazarious-ucu/skyweather/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/skyweather/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/skyweather/internal/services/weather"
	"github.com/Nazarious-ucu/skyweather/internal/services/weather/decorators"
	"github.com/Nazarious-ucu/skyweather/internal/surface"
	"github.com/Nazarious-ucu/skyweather/internal/widget"
	fLogger "github.com/Nazarious-ucu/skyweather/pkg/logger"
)

const (
	serviceName = "skyweather"

	shutdownTimeout  = 5 * time.Second
	redisPingTimeout = 2 * time.Second
)

// ServiceContainer holds initialized dependencies for the server.
type ServiceContainer struct {
	Widget *widget.Widget
	Page   *surface.Page

	Router       *gin.Engine
	Srv          *http.Server
	Registry     *prometheus.Registry
	HTTPLogsPath string
	redis        *redis.Client
	fileLogger *zap.Logger
}

// App ties together config and logger for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{
		cfg: cfg,
		l:   logger,
	}
}

// Start initializes services, serves HTTP and waits for ctx to end.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		a.l.Info().
			Str("address", a.cfg.ServerAddress()).
			Msg("http server listening")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping widget service")
	case err := <-serveErr:
		a.l.Error().Err(err).Msg("http server failed")
		_ = a.Shutdown(srvContainer)
		return err
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown stops the HTTP server, closes Redis and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping widget service…")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	} else {
		a.l.Info().Msg("http server stopped")
	}

	if srvContainer.redis != nil {
		if err := srvContainer.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := srvContainer.fileLogger.Sync(); err != nil {
		a.l.Warn().Err(err).Msg("failed to sync file logger")
	}

	return errors.Join(errs...)
}

// Init wires the widget and its HTTP front without starting the server.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().
		Str("address", a.cfg.ServerAddress()).
		Bool("redis", a.cfg.Redis.Enabled).
		Msg("initializing widget service")

	loc, err := a.cfg.Location()
	if err != nil {
		return ServiceContainer{}, err
	}

	if dir := filepath.Dir(a.cfg.HTTPLogsPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ServiceContainer{}, err
		}
	}
	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		return ServiceContainer{}, err
	}

	registry := prometheus.NewRegistry()
	met := metricsSvc.NewMetrics(serviceName, registry)

	// HTTP client logging
	httpLogClient := &http.Client{Transport: loggerT.NewRoundTripper(fileLogger)}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	openWeather := serviceWeather.NewBreakerClient("OpenWeather", breakerCfg,
		serviceWeather.NewClientOpenWeatherMap(a.cfg.OpenWeatherMapAPIKey, a.cfg.OpenWeatherMapURL, httpLogClient, a.l),
	)

	var (
		fetcher     widgetFetcher = openWeather
		redisClient *redis.Client
	)
	if a.cfg.Redis.Enabled {
		redisClient = a.newRedisConnection()
		cacheMetrics := cache.NewMetricsDecorator[models.Report](
			cache.NewRedisClient[models.Report](redisClient, a.l, a.cfg.Redis.TTL()),
			metricsSvc.NewPromCollector(serviceName, registry),
		)
		fetcher = decorators.NewCachedClient(openWeather, cacheMetrics, a.l)
	}

	page := surface.NewPage(true)
	w := widget.New(page, fetcher, met, widget.Config{
		IconBaseURL: a.cfg.IconBaseURL,
		Location:    loc,
		Tracks:      widget.DefaultTracks(a.cfg.AudioAssetsDir),
		Effects: widget.EffectsConfig{
			MaxShootingStars:   a.cfg.Effects.MaxShootingStars,
			CancelStarsOnClear: a.cfg.Effects.CancelStarsOnClear,
			StarLifetime:       a.cfg.Effects.StarLifetime,
		},
	}, a.l)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID(a.l))
	router.Use(met.HTTPMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	handlers.NewHandler(w, page, a.cfg.Server.SearchTimeout, a.l).Register(router)
	a.mountStatic(router)

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		Widget:       w,
		Page:         page,
		Router:       router,
		Srv:          httpServer,
		Registry:     registry,
		HTTPLogsPath: a.cfg.HTTPLogsPath,
		redis:        redisClient,
		fileLogger:   fileLogger,
	}, nil
}

type widgetFetcher interface {
	Fetch(ctx context.Context, city string) (models.Report, error)
}

func (a *App) newRedisConnection() *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: a.cfg.Redis.Address(), DB: a.cfg.Redis.DB})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.l.Warn().
			Err(err).
			Str("address", a.cfg.Redis.Address()).
			Msg("redis unreachable, lookups will bypass the cache")
	}
	return client
}

// mountStatic serves the page, its assets and the audio tracks from StaticDir.
func (a *App) mountStatic(router *gin.Engine) {
	dir := a.cfg.StaticDir
	if dir == "" {
		return
	}

	router.Static("/static", dir)
	router.StaticFile("/", filepath.Join(dir, "index.html"))

	assets := strings.Trim(a.cfg.AudioAssetsDir, "/")
	if assets != "" && assets != "static" && !strings.Contains(assets, "://") {
		router.Static("/"+assets, filepath.Join(dir, assets))
	}
}

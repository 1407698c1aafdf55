package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tidynest/tidynest-backend/api/routes"
	"github.com/tidynest/tidynest-backend/internal/auth"
	"github.com/tidynest/tidynest-backend/internal/bookings"
	"github.com/tidynest/tidynest-backend/internal/calendar"
	"github.com/tidynest/tidynest-backend/internal/cleaningjobs"
	"github.com/tidynest/tidynest-backend/internal/houses"
	"github.com/tidynest/tidynest-backend/internal/notifications"
	"github.com/tidynest/tidynest-backend/internal/properties"
	"github.com/tidynest/tidynest-backend/internal/users"
	"github.com/tidynest/tidynest-backend/pkg/auth/session"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/db"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
	"github.com/tidynest/tidynest-backend/pkg/migrate"
	"github.com/tidynest/tidynest-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(registry)

	gormDB := dbClient.DB()
	usersRepo := users.NewRepository(gormDB)

	usersService, err := users.NewService(usersRepo, storeMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}
	housesService, err := houses.NewService(houses.NewRepository(gormDB), storeMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create houses service", err)
		os.Exit(1)
	}
	propertiesService, err := properties.NewService(properties.NewRepository(gormDB), storeMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create properties service", err)
		os.Exit(1)
	}
	jobsService, err := cleaningjobs.NewService(cleaningjobs.NewRepository(gormDB), storeMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cleaning jobs service", err)
		os.Exit(1)
	}
	bookingsService, err := bookings.NewService(bookings.NewRepository(gormDB), storeMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create bookings service", err)
		os.Exit(1)
	}
	calendarService, err := calendar.NewService(calendar.NewRepository(gormDB), cfg.Calendar, storeMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create calendar service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserFinder:     usersRepo,
		UserCreator:    usersService,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	var queueOpts []notifications.Option
	if cfg.Notifications.MirrorTTL > 0 {
		queueOpts = append(queueOpts, notifications.WithMirror(
			notifications.NewRedisMirror(redisClient, logg, cfg.Notifications.MirrorTTL),
		))
	}
	queue := notifications.NewQueue(logg, queueOpts...)
	defer queue.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Redis:         redisClient,
			Sessions:      sessionManager,
			Registry:      registry,
			Auth:          authService,
			Users:         usersService,
			Houses:        housesService,
			Properties:    propertiesService,
			CleaningJobs:  jobsService,
			Bookings:      bookingsService,
			Calendar:      calendarService,
			Notifications: queue,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"credopass/internal/cache"
	"credopass/internal/db/migrate"
	"credopass/internal/http/handlers"
	checkinh "credopass/internal/http/handlers/checkin"
	eventh "credopass/internal/http/handlers/event"
	orgh "credopass/internal/http/handlers/organization"
	userh "credopass/internal/http/handlers/user"
	"credopass/internal/http/router"
	"credopass/internal/lib/config"
	"credopass/internal/lib/sl"
	repo "credopass/internal/repository"
	"credopass/internal/service/checkin"
	"credopass/internal/service/event"
	"credopass/internal/service/organization"
	"credopass/internal/service/user"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting credopass core api", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrate.Run(cfg.DatabaseURL, migrate.DirectionUp); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}
	defer rdb.Close()

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	orgRepo := repo.NewOrganizationRepo(db, trmsqlx.DefaultCtxGetter)
	eventRepo := repo.NewEventRepo(db, trmsqlx.DefaultCtxGetter)
	attendanceRepo := repo.NewAttendanceRepo(db, trmsqlx.DefaultCtxGetter)
	loyaltyRepo := repo.NewLoyaltyRepo(db, trmsqlx.DefaultCtxGetter)

	checkinLock := cache.NewCheckinLock(rdb, cfg.Redis.CheckinLockTTL)

	userService := user.NewUserService(userRepo)
	orgService := organization.NewOrganizationService(trManager, orgRepo, loyaltyRepo, userRepo)
	eventService := event.NewEventService(trManager, eventRepo, userRepo, attendanceRepo)
	checkinService := checkin.NewCheckinService(
		trManager, eventRepo, attendanceRepo, loyaltyRepo, checkinLock, cfg.Loyalty.PointsPerCheckin,
	)

	handler := router.New(log, cfg.HTTPServer.BasePath, cfg.Auth, router.Handlers{
		Health: handlers.Healthcheck(log, map[string]handlers.Check{
			"postgres": db.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		User:         userh.NewUserHandler(log, userService),
		Organization: orgh.NewOrganizationHandler(log, orgService),
		Event:        eventh.NewEventHandler(log, eventService),
		Checkin:      checkinh.NewCheckinHandler(log, checkinService),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting http server",
			slog.String("address", cfg.HTTPServer.Address),
			slog.String("base_path", cfg.HTTPServer.BasePath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server gracefully", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envDev, envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
	return log
}

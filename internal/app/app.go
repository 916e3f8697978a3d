package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/florarium-backend/internal/adapter/badger"
	"github.com/heartmarshall/florarium-backend/internal/adapter/filestore"
	"github.com/heartmarshall/florarium-backend/internal/adapter/postgres"
	"github.com/heartmarshall/florarium-backend/internal/adapter/postgres/flowersync"
	"github.com/heartmarshall/florarium-backend/internal/adapter/provider/placeholder"
	"github.com/heartmarshall/florarium-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/florarium-backend/internal/auth"
	"github.com/heartmarshall/florarium-backend/internal/botanical"
	"github.com/heartmarshall/florarium-backend/internal/config"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/inbox"
	"github.com/heartmarshall/florarium-backend/internal/metrics"
	"github.com/heartmarshall/florarium-backend/internal/notify"
	"github.com/heartmarshall/florarium-backend/internal/scheduler"
	"github.com/heartmarshall/florarium-backend/internal/service/cloudsync"
	"github.com/heartmarshall/florarium-backend/internal/service/garden"
	"github.com/heartmarshall/florarium-backend/internal/transport/middleware"
	"github.com/heartmarshall/florarium-backend/internal/transport/rest"
	"github.com/heartmarshall/florarium-backend/internal/transport/ws"
	"github.com/heartmarshall/florarium-backend/migrations"
)

type cloudSync interface {
	MergeRemoteIntoLocal(ctx context.Context, local []domain.Flower) ([]domain.Flower, error)
	PushLocalToRemote(ctx context.Context, flowers []domain.Flower) error
	Metadata(ctx context.Context) (*domain.SyncMetadata, error)
	DeleteRemote(ctx context.Context) error
}

type backupWriter interface {
	Write(t time.Time, data []byte) (string, error)
	Prune(keep int) (int, error)
}

// Run wires every component, serves HTTP and blocks until ctx is cancelled
// or a component fails. Shutdown drains HTTP first, then stops the garden.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting florarium",
		slog.String("version", BuildVersion()),
		slog.String("device_id", cfg.Device.ID),
		slog.String("log_level", cfg.Log.Level),
	)

	// --- storage ---

	prefs, err := badger.Open(badger.Config{
		Path:           cfg.Badger.Path,
		InMemory:       cfg.Badger.InMemory,
		SyncWrites:     cfg.Badger.SyncWrites,
		GCDiscardRatio: cfg.Badger.GCDiscardRatio,
	}, logger)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer closeLogged(logger, "preferences", prefs.Close)

	widget, err := sqlite.Open(ctx, cfg.Storage.SharedDBPath, logger)
	if err != nil {
		return fmt.Errorf("open shared container: %w", err)
	}
	defer closeLogged(logger, "shared container", widget.Close)

	documents, err := filestore.New(cfg.Storage.DataDir, prefs, logger)
	if err != nil {
		return err
	}

	var backups backupWriter
	if cfg.Backup.Enabled {
		dir, err := filestore.NewBackupDir(cfg.Storage.BackupsDir, logger)
		if err != nil {
			return err
		}
		backups = dir
	}

	health := rest.NewHealthHandler(BuildVersion())

	var cloud cloudSync
	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			applied, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
			if err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			logger.Info("database migrated", slog.Int("applied", applied))
		}

		cloud = cloudsync.NewService(logger, flowersync.New(pool), postgres.NewTxManager(pool), cfg.Sync.Account, cfg.Device.ID)
		health.Register("database", pool)
	}

	// --- providers ---

	renderer := placeholder.NewRenderer(cfg.Generation.PlaceholderSize, cfg.Generation.ThumbnailSide)
	images := newImageGenerator(cfg.Generation, renderer, logger)
	text := newTextGenerator(cfg.Generation, logger)
	env := newEnvironment(cfg.Weather, logger)
	logger.Info("generation providers", describeProviders(images, text)...)

	species, err := botanical.LoadCatalog(botanical.DefaultRand)
	if err != nil {
		return err
	}

	// --- garden ---

	bus := events.NewBus(logger)
	notifier := notify.NewScheduler(bus, logger)
	defer notifier.CancelAll()

	svc := garden.NewService(logger, documents, prefs, widget, images, text, env, species, renderer, notifier, bus, cloud, backups,
		garden.Config{
			RevealAt:      cfg.Schedule.RevealAt,
			Jitter:        cfg.Schedule.Jitter,
			Location:      cfg.Schedule.Location,
			ReminderDelay: cfg.Schedule.ReminderDelay,
			BackupKeep:    cfg.Backup.Keep,
			DeviceID:      cfg.Device.ID,
			DeviceName:    cfg.Device.Name,
			OwnerName:     cfg.Device.OwnerName,
			AppVersion:    Version,
		})
	defer svc.Close()

	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load garden: %w", err)
	}
	health.Register("garden", svc)

	jobs, err := newJobs(cfg, logger, svc, prefs, cloud != nil)
	if err != nil {
		return err
	}

	watcher, err := inbox.New(logger, cfg.Storage.InboxDir, svc)
	if err != nil {
		return err
	}

	// --- http ---

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Health:    health,
		Devices:   rest.NewDeviceHandler(tokens, logger),
		Garden:    rest.NewGardenHandler(svc, cfg.Server.MaxBodyBytes, logger),
		Events:    ws.NewHandler(logger, bus, strings.Split(cfg.CORS.AllowedOrigins, ",")),
		Metrics:   metrics.Handler(),
		Auth:      middleware.Auth(tokens),
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return jobs.Run(gctx) })
	g.Go(func() error { return watcher.Run(gctx) })

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logger.Info("florarium stopped")
	return err
}

// newJobs registers the periodic work driven by the cron scheduler.
func newJobs(cfg *config.Config, logger *slog.Logger, svc *garden.Service, prefs *badger.Store, syncEnabled bool) (*scheduler.Scheduler, error) {
	s := scheduler.New(logger, cfg.Schedule.Location)

	jobs := []scheduler.Job{
		{
			Name:       "schedule",
			Spec:       cfg.Schedule.TickSpec,
			RunOnStart: true,
			Run: func(ctx context.Context) error {
				_, err := svc.ScheduleIfNeeded(ctx)
				return err
			},
		},
		{
			Name: "preferences-gc",
			Spec: cfg.Badger.GCSpec,
			Run:  prefs.RunGC,
		},
	}
	if syncEnabled {
		jobs = append(jobs, scheduler.Job{
			Name: "cloud-sync",
			Spec: cfg.Sync.Spec,
			Run: func(ctx context.Context) error {
				_, err := svc.SyncNow(ctx)
				return err
			},
		})
	}
	if cfg.Backup.Enabled {
		jobs = append(jobs, scheduler.Job{
			Name: "auto-backup",
			Spec: cfg.Backup.Spec,
			Run: func(ctx context.Context) error {
				_, err := svc.AutoBackup(ctx)
				return err
			},
		})
	}

	for _, j := range jobs {
		if err := s.Add(j); err != nil {
			return nil, fmt.Errorf("register job %s: %w", j.Name, err)
		}
	}
	return s, nil
}

func closeLogged(logger *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("close "+name, slog.String("error", err.Error()))
	}
}

package internal

import (
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"net/http"
	"perfumefinder/internal/alerts"
	"perfumefinder/internal/controllers"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/services"
	"perfumefinder/internal/storage/interfaces"
	"perfumefinder/internal/structures"
	"strconv"
	"time"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	WebServer *http.Server
	conf      *structures.Config
	logger    providers.Logger
	state     services.UserStateServiceInterface
	scheduler alerts.SchedulerInterface
	store     interfaces.BlobStoreInterface
}

// NewApp restores user state and loads the catalogue before the server is
// built. Neither failure is fatal: a broken blob starts the user empty and a
// failed catalogue load is reported by the API as 503.
func NewApp(healthController *controllers.HealthController, catalogueService services.CatalogueServiceInterface, state services.UserStateServiceInterface, scheduler alerts.SchedulerInterface, store interfaces.BlobStoreInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	instrumentedAPI := providers.MetricsMiddleware(metrics, logger, apiMux)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	if err := state.Restore(); err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
	// The load error is kept in the catalogue status.
	_ = catalogueService.Load()

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:      conf,
		logger:    logger,
		state:     state,
		scheduler: scheduler,
		store:     store,
	}, nil
}

// Run serves until ctx is cancelled or the listener fails, then flushes user
// state and closes the store.
func (a *App) Run(ctx context.Context) error {
	a.scheduler.Init()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
		if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.WebServer.Shutdown(shutdownCtx)
	})

	runErr := g.Wait()
	a.scheduler.Stop()

	if err := a.state.Flush(); err != nil {
		a.logger.Errorf(providers.TypeApp, "Error while persisting user state: %s", err)
		runErr = errors.Join(runErr, err)
	}
	if err := a.store.Close(); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if runErr == nil {
		a.logger.Infof(providers.TypeApp, "gracefully stopped")
	}
	return runErr
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/edgeselect/internal/adapters/in/http/api"
	"github.com/bnema/edgeselect/internal/adapters/out/ratelimit"
	"github.com/bnema/edgeselect/internal/adapters/out/telemetry"
	"github.com/bnema/edgeselect/internal/usecase/session"
)

const (
	serviceName     = "edgeselect"
	shutdownTimeout = 10 * time.Second
	limiterIdle     = 10 * time.Minute
)

// Run starts the selection server and blocks until ctx ends or a shutdown
// signal arrives.
func Run(ctx context.Context, configPath, version string) error {
	v, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx, stop := shutdownContext(zerowrap.WithCtx(ctx, log))
	defer stop()

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry, serviceName, version)
	if err != nil {
		return log.WrapErr(err, "failed to initialize telemetry")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown error")
		}
	}()

	svc, err := createServices(cfg, log)
	if err != nil {
		return err
	}

	if err := svc.bus.Start(); err != nil {
		return log.WrapErr(err, "failed to start event bus")
	}
	defer func() {
		if err := svc.bus.Stop(); err != nil {
			log.Warn().Err(err).Msg("event bus stop error")
		}
	}()

	watchConfig(v, log)

	revalidator := session.NewRevalidator(svc.session, cfg.Session.RevalidateInterval, nil)
	revalidator.Start(ctx)
	defer revalidator.Stop()

	go func() {
		if err := svc.session.EnsureInitialized(ctx); err != nil {
			log.Warn().Err(err).Msg("initial resolution failed, will retry on demand")
		}
	}()

	opts := []api.Option{api.WithEventLog(svc.history)}
	if cfg.API.RateLimit.Enabled {
		global := ratelimit.NewMemoryStore(cfg.API.RateLimit.GlobalRPS, cfg.API.RateLimit.Burst, log)
		perIP := ratelimit.NewMemoryStore(cfg.API.RateLimit.PerIPRPS, cfg.API.RateLimit.Burst, log)
		go pruneLimiters(ctx, perIP)
		opts = append(opts, api.WithRateLimit(global, perIP))
	}

	handler := api.NewHandler(svc.session, svc.resolver, svc.source, svc.ledger, log, opts...)
	defer svc.resolver.Wait()
	defer handler.Wait()

	e := api.New(log)
	handler.RegisterRoutes(e)
	if cfg.Embed.Enabled {
		e.GET("/embed/agent", echo.WrapHandler(svc.relay.AgentHandler()))
		e.GET("/embed/agent.html", echo.WrapHandler(svc.relay.PageHandler()))
	}

	return serve(ctx, e, cfg.Server.Port, log)
}

// shutdownContext derives a context cancelled on SIGINT or SIGTERM.
func shutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func serve(ctx context.Context, e *echo.Echo, port int, log zerowrap.Logger) error {
	addr := fmt.Sprintf(":%d", port)
	errCh := make(chan error, 1)

	log.Info().Str(zerowrap.FieldComponent, "api").Int("port", port).Msg("selection API listening")
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("context cancelled, shutting down")
	case err, ok := <-errCh:
		if ok {
			return log.WrapErr(err, "selection API server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("selection API shutdown error")
	}
	return nil
}

// watchConfig applies logging.level changes from the config file at runtime.
func watchConfig(v *viper.Viper, log zerowrap.Logger) {
	if v.ConfigFileUsed() == "" {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		level, err := zerolog.ParseLevel(v.GetString("logging.level"))
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("ignoring invalid logging.level")
			return
		}
		zerolog.SetGlobalLevel(level)
		log.Info().Str("file", e.Name).Str("level", level.String()).Msg("config reloaded")
	})
	v.WatchConfig()
}

func pruneLimiters(ctx context.Context, store *ratelimit.MemoryStore) {
	ticker := time.NewTicker(limiterIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Prune(limiterIdle)
		}
	}
}

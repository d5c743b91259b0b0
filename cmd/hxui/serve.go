package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
	hxuiecho "github.com/pthm/hxui/adapters/echo"
	"github.com/pthm/hxui/internal/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component showcase",
		Long: `Serve starts an HTTP server with a page exercising every hxui component.
Resize the browser window to watch client components follow the breakpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if cfg.Key() == nil {
				logger.Warn().Msg("no state_key configured, using a random key; tokens will not survive a restart")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// newServer builds the Echo instance serving the showcase.
func newServer(cfg config.Config, logger zerolog.Logger) (*echo.Echo, *hxui.Registry) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	reg := hxuiecho.Mount(e,
		hxuiecho.WithKey(cfg.Key()),
		hxuiecho.WithPrefix(cfg.Prefix),
		hxuiecho.WithTable(cfg.Breakpoints),
		hxuiecho.WithLogger(logger),
	)
	e.Use(hxuiecho.Middleware(reg))

	s := newShowcase(reg)
	e.GET("/", s.page)
	e.POST("/notify", s.notify)

	return e, reg
}

func serve(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	e, reg := newServer(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("prefix", reg.Prefix()).Int("components", reg.Components()).Msg("listening")
		errCh <- e.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request through zerolog.
func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logger.Debug()
			if v.Error != nil {
				ev = logger.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Bool("htmx", c.Request().Header.Get("HX-Request") == "true").
				Msg("request")
			return nil
		},
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bnema/edgeselect/internal/adapters/dto"
	"github.com/bnema/edgeselect/internal/boundaries/out"
)

// RateLimit rejects requests over the global or per-IP budget. When either
// limiter is nil every request passes through.
func RateLimit(global, perIP out.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if global == nil || perIP == nil {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if !global.Allow(ctx, "global") || !perIP.Allow(ctx, "ip:"+c.RealIP()) {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}

// RequestLogger attaches log to the request context and logs each request.
func RequestLogger(log zerowrap.Logger) echo.MiddlewareFunc {
	logValues := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zerolog.InfoLevel
			if v.Status >= http.StatusInternalServerError {
				level = zerolog.WarnLevel
			}
			log.WithLevel(level).
				Str(zerowrap.FieldClientIP, c.RealIP()).
				Str(zerowrap.FieldMethod, v.Method).
				Str(zerowrap.FieldPath, v.URI).
				Int(zerowrap.FieldStatus, v.Status).
				Int64(zerowrap.FieldDuration, v.Latency.Milliseconds()).
				Msg("request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withLogger := func(c echo.Context) error {
			req := c.Request()
			ctx := zerowrap.WithCtx(req.Context(), log)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
		return logValues(withLogger)
	}
}

// New creates the echo server with the common middleware stack.
func New(log zerowrap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = 10 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
	}))
	e.Use(RequestLogger(log))

	return e
}

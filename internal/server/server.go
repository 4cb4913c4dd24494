package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appconfig "github.com/mohammad-safakhou/studyplan/config"
	"github.com/mohammad-safakhou/studyplan/internal/planner"
	"github.com/mohammad-safakhou/studyplan/internal/uploads"
)

func Run(cfg *appconfig.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	// Unified HTTP error handler with logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.String(code, msg)
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	store, err := uploads.NewDirStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes())
	if err != nil {
		return err
	}

	h := &PlanHandler{
		Uploads: store,
		Clock:   planner.SystemClock,
		Cfg:     cfg,
		Log:     log.New(log.Writer(), "[PLAN] ", log.LstdFlags),
	}
	h.Register(e)

	log.Printf("listening on %s", cfg.Server.Listen)
	return e.Start(cfg.Server.Listen)
}

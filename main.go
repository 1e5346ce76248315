// Package main library catalog dashboard.
//
// @title           Community Library Catalog
// @version         1.0
// @description     book catalog dashboard (availability, loan metrics, search).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/OriStav/LibCatalog/app/echoServer"
	catalogctrl "github.com/OriStav/LibCatalog/app/echoServer/controller/catalog"
	dashboardctrl "github.com/OriStav/LibCatalog/app/echoServer/controller/dashboard"
	"github.com/OriStav/LibCatalog/app/echoServer/validation"
	"github.com/OriStav/LibCatalog/config"
	feedrepo "github.com/OriStav/LibCatalog/repository/feed"
	catalogsvc "github.com/OriStav/LibCatalog/service/catalog"
	snapshotsvc "github.com/OriStav/LibCatalog/service/snapshot"
	"github.com/OriStav/LibCatalog/util/httpx"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// repos
	client := httpx.NewClient(time.Duration(cfg.FetchTimeout) * time.Second)
	fr := feedrepo.NewHTTP(cfg.BooksFeedURL, cfg.LoansFeedURL, client)

	// services
	ss := snapshotsvc.New(fr)
	cs := catalogsvc.New()

	// warm the snapshot; without both feeds there is no catalog to serve
	snap, err := ss.Get(ctx)
	if err != nil {
		log.Error("initial feed fetch failed", "err", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "books", len(snap.Books), "loans", len(snap.Loans))

	// controllers
	v := validator.New()
	catalogC := &catalogctrl.Controller{Snap: ss, Cat: cs, V: v, Log: log}
	dashboardC := &dashboardctrl.Controller{Snap: ss, Cat: cs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Catalog:   catalogC,
		Dashboard: dashboardC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

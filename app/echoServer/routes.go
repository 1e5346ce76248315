package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/OriStav/LibCatalog/app/echoServer/controller/catalog"
	"github.com/OriStav/LibCatalog/app/echoServer/controller/dashboard"
)

type C struct {
	Catalog   *catalog.Controller
	Dashboard *dashboard.Controller
}

func Register(e *echo.Echo, c C) {
	// Dashboard page
	e.GET("/", c.Dashboard.Index)

	// JSON API
	v1 := e.Group("/v1")
	v1.GET("/books", c.Catalog.List)
	v1.GET("/metrics", c.Catalog.Metrics)
	v1.POST("/refresh", c.Catalog.Refresh)
}

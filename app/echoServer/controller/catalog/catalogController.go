package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	catalogsvc "github.com/OriStav/LibCatalog/service/catalog"
	snapshotsvc "github.com/OriStav/LibCatalog/service/snapshot"

	feedrepo "github.com/OriStav/LibCatalog/repository/feed"
)

type Controller struct {
	Snap snapshotsvc.Service
	Cat  catalogsvc.Service
	V    *validator.Validate
	Log  *slog.Logger
}

func feedStatus(err error) int {
	switch feedrepo.Code(err) {
	case feedrepo.ErrSourceUnavailable, feedrepo.ErrMalformedFeed:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// GET /v1/books
func (h *Controller) List(c echo.Context) error {
	var req ListBooksReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"search": "max 200", "q": "max 200"},
		})
	}

	snap, err := h.Snap.Get(c.Request().Context())
	if err != nil {
		h.Log.Error("snapshot error", "err", err)
		return c.JSON(feedStatus(err), echo.Map{"message": "catalog source unavailable"})
	}

	books := h.Cat.DeriveAvailability(snap.Books, snap.Loans)
	books = h.Cat.FilterByExactMatch(books, req.Search)
	books = h.Cat.FilterBySubstring(books, req.Q)
	books = h.Cat.SortForDisplay(books)
	statuses := h.Cat.DeriveStatus(books, snap.Loans)

	rows := Rows(books, statuses)
	return c.JSON(http.StatusOK, echo.Map{"data": rows, "count": len(rows)})
}

// GET /v1/metrics
func (h *Controller) Metrics(c echo.Context) error {
	snap, err := h.Snap.Get(c.Request().Context())
	if err != nil {
		h.Log.Error("snapshot error", "err", err)
		return c.JSON(feedStatus(err), echo.Map{"message": "catalog source unavailable"})
	}

	m, warnings := h.Cat.ComputeMetrics(snap.Books, snap.Loans)
	if len(warnings) > 0 {
		h.Log.Warn("loan rows with unparsable dates", "count", len(warnings))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": m, "warnings": warnings})
}

// POST /v1/refresh
func (h *Controller) Refresh(c echo.Context) error {
	snap, err := h.Snap.Refresh(c.Request().Context())
	if err != nil {
		h.Log.Error("refresh error", "err", err)
		return c.JSON(feedStatus(err), echo.Map{"message": "refresh failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"fetched_at": snap.FetchedAt,
		"books":      len(snap.Books),
		"loans":      len(snap.Loans),
	})
}

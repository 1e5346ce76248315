package dashboard

import (
	"html/template"
	"log/slog"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/OriStav/LibCatalog/app/echoServer/controller/catalog"
	"github.com/OriStav/LibCatalog/model"
	catalogsvc "github.com/OriStav/LibCatalog/service/catalog"
	snapshotsvc "github.com/OriStav/LibCatalog/service/snapshot"
)

type Controller struct {
	Snap snapshotsvc.Service
	Cat  catalogsvc.Service
	Log  *slog.Logger
}

type pageData struct {
	Search  string
	Options []string
	Rows    []catalog.BookRow
	Metrics model.Metrics
}

// GET /
func (h *Controller) Index(c echo.Context) error {
	search := c.QueryParam("search")

	snap, err := h.Snap.Get(c.Request().Context())
	if err != nil {
		h.Log.Error("snapshot error", "err", err)
		return c.HTML(http.StatusBadGateway, "<h1>קטלוג הספרייה אינו זמין כעת</h1>")
	}

	books := h.Cat.DeriveAvailability(snap.Books, snap.Loans)
	options := make([]string, 0, len(books))
	for _, b := range books {
		options = append(options, b.Combination)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(options)))

	shown := h.Cat.SortForDisplay(h.Cat.FilterByExactMatch(books, search))
	statuses := h.Cat.DeriveStatus(shown, snap.Loans)
	metrics, _ := h.Cat.ComputeMetrics(snap.Books, snap.Loans)

	data := pageData{
		Search:  search,
		Options: options,
		Rows:    catalog.Rows(shown, statuses),
		Metrics: metrics,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pageTpl.Execute(c.Response(), data)
}

var pageTpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="he" dir="rtl">
<head>
<meta charset="utf-8">
<title>קטלוג ספרייה קהילתית 📚</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2em auto; }
h1, .metrics, .contact { text-align: center; }
table { width: 100%; border-collapse: collapse; }
th, td { border-bottom: 1px solid #ddd; padding: 6px 10px; text-align: right; }
.metrics span { display: inline-block; margin: 0 1.5em; font-size: 1.1em; }
form { text-align: center; margin-bottom: 1.5em; }
</style>
</head>
<body>
<h1>ספריית שדי חמד 🌳</h1>
<form method="get" action="/">
<select name="search">
<option value="">בחר/י ספר או מחבר</option>
{{- range .Options}}
<option value="{{.}}"{{if eq . $.Search}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<button type="submit">🔎</button>
<a href="/">↻</a>
</form>
<div class="metrics">
<span>📚 סה״כ ספרים: {{.Metrics.TotalBooks}}</span>
<span>✅ ספרים זמינים: {{.Metrics.AvailableBooks}}</span>
<span>📖 ספרים מושאלים: {{.Metrics.BorrowedBooks}}</span>
</div>
<h5 style="text-align:center">קטלוג הספרים 📚</h5>
<table>
<tr><th>📖 שם הספר</th><th>✍️ מחבר</th><th>👀 זמינות</th><th>🩺 סטטוס</th></tr>
{{- range .Rows}}
<tr><td>{{.Name}}</td><td>{{.Author}}</td><td>{{.Availability}}</td><td>{{.Status}}</td></tr>
{{- end}}
</table>
<div class="contact"><a href="mailto:hemmed.library@gmail.com">תיבת פניות</a> 📥</div>
</body>
</html>
`))

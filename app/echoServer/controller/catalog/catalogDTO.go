package catalog

import (
	"fmt"

	"github.com/OriStav/LibCatalog/model"
)

type ListBooksReq struct {
	// Search is the exact combination key ("{name} - {author}") picked in
	// the selection box; Q is the older free-text substring filter.
	Search string `query:"search" validate:"omitempty,max=200"`
	Q      string `query:"q" validate:"omitempty,max=200"`
}

type BookRow struct {
	Name         string `json:"name"`
	Author       string `json:"author"`
	Combination  string `json:"combination"`
	Availability string `json:"availability"`
	Status       string `json:"status"`
}

const (
	labelAvailable   = "✅ זמין"
	labelUnavailable = "❌ לא זמין"
)

func availabilityLabel(available bool) string {
	if available {
		return labelAvailable
	}
	return labelUnavailable
}

func statusLabel(st model.BookStatus) string {
	switch st.Kind {
	case model.StatusLate:
		return fmt.Sprintf("באיחור - %d ימים⚠️", st.Days)
	case model.StatusOnLoan:
		return fmt.Sprintf("מושאל - %d ימים📚", st.Days)
	default:
		return labelAvailable
	}
}

// Rows is shared with the HTML dashboard so both surfaces label
// availability and status identically.
func Rows(books []model.Book, statuses map[int64]model.BookStatus) []BookRow {
	rows := make([]BookRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, BookRow{
			Name:         b.Name,
			Author:       b.Author,
			Combination:  b.Combination,
			Availability: availabilityLabel(b.Available),
			Status:       statusLabel(statuses[b.ID]),
		})
	}
	return rows
}

package catalogsvc

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/OriStav/LibCatalog/model"
)

// LateAfterDays is the loan duration threshold. A loan of exactly this many
// days is still on time; one day more and it is late.
const LateAfterDays = 30

type Service interface {
	DeriveAvailability(books []model.Book, loans []model.Loan) []model.Book
	ComputeMetrics(books []model.Book, loans []model.Loan) (model.Metrics, []model.RowWarning)
	DeriveStatus(books []model.Book, loans []model.Loan) map[int64]model.BookStatus
	DeriveStatusText(books []model.Book, loans []model.Loan) map[int64]string
	FilterByExactMatch(books []model.Book, key string) []model.Book
	FilterBySubstring(books []model.Book, term string) []model.Book
	SortForDisplay(books []model.Book) []model.Book
}

type service struct {
	now func() time.Time
}

func New() Service { return &service{now: time.Now} }

// NewWithClock pins the evaluation time. Durations are recomputed on every
// call, so tests need a fixed clock to hit the late boundary exactly.
func NewWithClock(now func() time.Time) Service { return &service{now: now} }

// loanedIDs collects the ids of books referenced by at least one open loan.
func loanedIDs(loans []model.Loan) map[int64]struct{} {
	out := make(map[int64]struct{})
	for _, l := range loans {
		if !l.Returned() {
			out[l.BookID] = struct{}{}
		}
	}
	return out
}

func (s *service) DeriveAvailability(books []model.Book, loans []model.Loan) []model.Book {
	loaned := loanedIDs(loans)
	out := make([]model.Book, len(books))
	copy(out, books)
	for i := range out {
		_, onLoan := loaned[out[i].ID]
		out[i].Available = !onLoan
	}
	return out
}

// loanDuration is whole days from the loan date to the evaluation time.
func (s *service) loanDuration(l model.Loan) (int, error) {
	t, err := time.Parse(model.DateLayout, l.LoanDate)
	if err != nil {
		return 0, fmt.Errorf("loan_date %q: %w", l.LoanDate, err)
	}
	return int(s.now().Sub(t) / (24 * time.Hour)), nil
}

func (s *service) ComputeMetrics(books []model.Book, loans []model.Loan) (model.Metrics, []model.RowWarning) {
	var (
		warnings      []model.RowWarning
		activeLoans   int
		lateLoans     int
		borrowedIDs   = make(map[int64]struct{})
		lateIDs       = make(map[int64]struct{})
		activeLoaners = make(map[string]struct{})
		lateLoaners   = make(map[string]struct{})
	)

	for _, l := range loans {
		if l.Returned() {
			if _, err := time.Parse(model.DateLayout, l.ReturnDate); err != nil {
				warnings = append(warnings, model.RowWarning{
					BookID: l.BookID, LoanerID: l.LoanerID,
					Field: "return_date", Value: l.ReturnDate,
				})
			}
			continue
		}

		activeLoans++
		borrowedIDs[l.BookID] = struct{}{}
		activeLoaners[l.LoanerID] = struct{}{}

		days, err := s.loanDuration(l)
		if err != nil {
			// the row still counts as an open loan, it just cannot be
			// classified late without a parsable date
			warnings = append(warnings, model.RowWarning{
				BookID: l.BookID, LoanerID: l.LoanerID,
				Field: "loan_date", Value: l.LoanDate,
			})
			continue
		}
		if days > LateAfterDays {
			lateLoans++
			lateIDs[l.BookID] = struct{}{}
			lateLoaners[l.LoanerID] = struct{}{}
		}
	}

	m := model.Metrics{
		TotalBooks:     len(books),
		BorrowedBooks:  len(borrowedIDs),
		AvailableBooks: len(books) - len(borrowedIDs),
		ActiveLoans:    activeLoans,
		LateLoans:      lateLoans,
		ActiveLoaners:  len(activeLoaners),
		LateLoaners:    len(lateLoaners),
		LateBooks:      len(lateIDs),
	}
	return m, warnings
}

func (s *service) DeriveStatus(books []model.Book, loans []model.Loan) map[int64]model.BookStatus {
	byBook := make(map[int64]model.BookStatus, len(books))
	for _, l := range loans {
		if l.Returned() {
			continue
		}
		days, err := s.loanDuration(l)
		if err != nil {
			continue
		}
		st := model.BookStatus{Kind: model.StatusOnLoan, Days: days}
		if days > LateAfterDays {
			st.Kind = model.StatusLate
		}
		byBook[l.BookID] = st
	}
	out := make(map[int64]model.BookStatus, len(books))
	for _, b := range books {
		st, ok := byBook[b.ID]
		if !ok {
			st = model.BookStatus{Kind: model.StatusAvailable}
		}
		out[b.ID] = st
	}
	return out
}

func (s *service) DeriveStatusText(books []model.Book, loans []model.Loan) map[int64]string {
	out := make(map[int64]string, len(books))
	for id, st := range s.DeriveStatus(books, loans) {
		switch st.Kind {
		case model.StatusLate:
			out[id] = fmt.Sprintf("late, %d days", st.Days)
		case model.StatusOnLoan:
			out[id] = fmt.Sprintf("on loan, %d days", st.Days)
		default:
			out[id] = "available"
		}
	}
	return out
}

// FilterByExactMatch keeps books whose combination key equals key exactly.
// An empty key is the identity; an unknown key yields an empty set.
func (s *service) FilterByExactMatch(books []model.Book, key string) []model.Book {
	if key == "" {
		return books
	}
	out := []model.Book{}
	for _, b := range books {
		if b.Combination == key {
			out = append(out, b)
		}
	}
	return out
}

// FilterBySubstring is the older free-text behavior: case-insensitive
// contains on name or author.
func (s *service) FilterBySubstring(books []model.Book, term string) []model.Book {
	if term == "" {
		return books
	}
	term = strings.ToLower(term)
	out := []model.Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Name), term) ||
			strings.Contains(strings.ToLower(b.Author), term) {
			out = append(out, b)
		}
	}
	return out
}

// SortForDisplay orders by author then name ascending, using Hebrew
// collation since the catalog is mostly right-to-left script.
func (s *service) SortForDisplay(books []model.Book) []model.Book {
	out := make([]model.Book, len(books))
	copy(out, books)
	c := collate.New(language.Hebrew)
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := c.CompareString(out[i].Author, out[j].Author); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

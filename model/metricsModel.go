// model/metrics.go
package model

// Metrics are the dashboard counters. AvailableBooks + BorrowedBooks always
// equals TotalBooks; the late counters are subsets of their active pair.
type Metrics struct {
	TotalBooks     int `json:"total_books"`
	BorrowedBooks  int `json:"borrowed_books"`
	AvailableBooks int `json:"available_books"`
	ActiveLoans    int `json:"active_loans"`
	LateLoans      int `json:"late_loans"`
	ActiveLoaners  int `json:"active_loaners"`
	LateLoaners    int `json:"late_loaners"`
	LateBooks      int `json:"late_books"`
}

// RowWarning flags a loan row whose date failed to parse. The row is dropped
// from duration-dependent aggregates only; the computation never aborts.
type RowWarning struct {
	BookID   int64  `json:"book_id"`
	LoanerID string `json:"loaner_id"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

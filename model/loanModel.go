// model/loan.go
package model

import "time"

// DateLayout is the calendar format used by both loan date columns.
const DateLayout = "02/01/2006"

// Loan is one row of the loans log feed. Dates stay in their raw DD/MM/YYYY
// form; an empty ReturnDate means the loan is open and the book is out.
// BookID may reference a book missing from the books feed; such rows are
// ignored when joining but still count in loan-based aggregates.
type Loan struct {
	BookID     int64  `json:"book_id"`
	LoanerID   string `json:"loaner_id"`
	LoanDate   string `json:"loan_date"`
	ReturnDate string `json:"return_date"`
}

// Returned reports whether the loan has a recorded return date.
func (l Loan) Returned() bool { return l.ReturnDate != "" }

// Snapshot is one atomic read of both feeds. Availability and metrics must
// always be derived from the same Snapshot so the two signals cannot diverge.
type Snapshot struct {
	Books     []Book    `json:"books"`
	Loans     []Loan    `json:"loans"`
	FetchedAt time.Time `json:"fetched_at"`
}

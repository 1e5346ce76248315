// model/book.go
package model

// Book is one row of the books feed. Name and Author are trimmed at the
// feed boundary; Combination is precomputed there as the unique search key.
type Book struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Active      bool   `json:"-"`
	Available   bool   `json:"available"`
	Combination string `json:"combination"`
}

type StatusKind string

const (
	StatusAvailable StatusKind = "AVAILABLE"
	StatusOnLoan    StatusKind = "ON_LOAN"
	StatusLate      StatusKind = "LATE"
)

// BookStatus is the per-book loan status shown next to a catalog row.
// Days is the running loan duration and is zero for available books.
type BookStatus struct {
	Kind StatusKind `json:"kind"`
	Days int        `json:"days"`
}

package feedrepo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OriStav/LibCatalog/model"
)

// Columns are addressed by header name, not position, so the spreadsheet
// owner can reorder or append columns without breaking the import.

func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// decodeBooks parses the books feed and drops inactive rows. Everything
// downstream only ever sees the active catalog.
func decodeBooks(r io.Reader) ([]model.Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("books feed: %w", err)
	}
	idx, err := headerIndex(header, "id", "name", "author", "active")
	if err != nil {
		return nil, fmt.Errorf("books feed: %w", err)
	}

	var out []model.Book
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("books feed line %d: %w", line, err)
		}
		id, err := strconv.ParseInt(field(rec, idx, "id"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("books feed line %d: bad id %q", line, field(rec, idx, "id"))
		}
		active, err := strconv.ParseBool(strings.ToLower(field(rec, idx, "active")))
		if err != nil {
			return nil, fmt.Errorf("books feed line %d: bad active %q", line, field(rec, idx, "active"))
		}
		if !active {
			continue
		}
		b := model.Book{
			ID:     id,
			Name:   field(rec, idx, "name"),
			Author: field(rec, idx, "author"),
			Active: active,
		}
		b.Combination = b.Name + " - " + b.Author
		out = append(out, b)
	}
	return out, nil
}

func decodeLoans(r io.Reader) ([]model.Loan, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("loans feed: %w", err)
	}
	idx, err := headerIndex(header, "book_id", "loaner_id", "loan_date", "return_date")
	if err != nil {
		return nil, fmt.Errorf("loans feed: %w", err)
	}

	var out []model.Loan
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loans feed line %d: %w", line, err)
		}
		bookID, err := strconv.ParseInt(field(rec, idx, "book_id"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("loans feed line %d: bad book_id %q", line, field(rec, idx, "book_id"))
		}
		out = append(out, model.Loan{
			BookID:     bookID,
			LoanerID:   field(rec, idx, "loaner_id"),
			LoanDate:   field(rec, idx, "loan_date"),
			ReturnDate: field(rec, idx, "return_date"),
		})
	}
	return out, nil
}

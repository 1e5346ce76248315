package feedrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/OriStav/LibCatalog/model"
)

// errors used by services and controllers

type ErrCode string

const (
	ErrSourceUnavailable ErrCode = "SOURCE_UNAVAILABLE"
	ErrMalformedFeed     ErrCode = "MALFORMED_FEED"
)

type codedError struct {
	code  ErrCode
	cause error
}

func (e codedError) Error() string {
	if e.cause != nil {
		return string(e.code) + ": " + e.cause.Error()
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }
func (e codedError) Unwrap() error { return e.cause }

func makeErr(c ErrCode, cause error) error { return codedError{code: c, cause: cause} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Repo is the data source: two independent tabular feeds, read-only.
type Repo interface {
	FetchBooks(ctx context.Context) ([]model.Book, error)
	FetchLoans(ctx context.Context) ([]model.Loan, error)
}

type httpRepo struct {
	booksURL string
	loansURL string
	client   *http.Client
}

func NewHTTP(booksURL, loansURL string, client *http.Client) Repo {
	return &httpRepo{booksURL: booksURL, loansURL: loansURL, client: client}
}

func (r *httpRepo) FetchBooks(ctx context.Context) ([]model.Book, error) {
	body, err := r.download(ctx, r.booksURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	books, err := decodeBooks(body)
	if err != nil {
		return nil, makeErr(ErrMalformedFeed, err)
	}
	return books, nil
}

func (r *httpRepo) FetchLoans(ctx context.Context) ([]model.Loan, error) {
	body, err := r.download(ctx, r.loansURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	loans, err := decodeLoans(body)
	if err != nil {
		return nil, makeErr(ErrMalformedFeed, err)
	}
	return loans, nil
}

func (r *httpRepo) download(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, makeErr(ErrSourceUnavailable, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, makeErr(ErrSourceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, makeErr(ErrSourceUnavailable, fmt.Errorf("feed fetch failed: %s", resp.Status))
	}
	return resp.Body, nil
}

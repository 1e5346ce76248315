// repository/feed/feed_repository_test.go
package feedrepo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	feedrepo "github.com/OriStav/LibCatalog/repository/feed"
)

const booksCSV = `id,name,author,active
1,  Alpha  , A ,True
2,Beta,B,True
3,Gone,C,False
`

const loansCSV = `book_id,loaner_id,loan_date,return_date
1,9,01/05/2025,
2,8,10/04/2025,12/04/2025
`

func serveCSV(t *testing.T, booksBody, loansBody string) feedrepo.Repo {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(booksBody))
	})
	mux.HandleFunc("/loans", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(loansBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return feedrepo.NewHTTP(srv.URL+"/books", srv.URL+"/loans", srv.Client())
}

func TestFetchBooks(t *testing.T) {
	r := serveCSV(t, booksCSV, loansCSV)

	books, err := r.FetchBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2, "inactive books must be dropped at the boundary")

	require.Equal(t, int64(1), books[0].ID)
	require.Equal(t, "Alpha", books[0].Name, "name must be trimmed")
	require.Equal(t, "A", books[0].Author, "author must be trimmed")
	require.Equal(t, "Alpha - A", books[0].Combination)
	require.Equal(t, "Beta - B", books[1].Combination)
}

func TestFetchBooks_ColumnOrderIndependent(t *testing.T) {
	reordered := "active,author,id,name,extra\nTrue,A,1,Alpha,x\n"
	r := serveCSV(t, reordered, loansCSV)

	books, err := r.FetchBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Alpha - A", books[0].Combination)
}

func TestFetchLoans(t *testing.T) {
	r := serveCSV(t, booksCSV, loansCSV)

	loans, err := r.FetchLoans(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 2)

	require.Equal(t, int64(1), loans[0].BookID)
	require.Equal(t, "9", loans[0].LoanerID)
	require.Equal(t, "01/05/2025", loans[0].LoanDate)
	require.False(t, loans[0].Returned())
	require.True(t, loans[1].Returned())
}

func TestFetchBooks_MissingColumn(t *testing.T) {
	r := serveCSV(t, "id,name,author\n1,Alpha,A\n", loansCSV)

	_, err := r.FetchBooks(context.Background())
	require.Error(t, err)
	require.Equal(t, feedrepo.ErrMalformedFeed, feedrepo.Code(err))
}

func TestFetchBooks_BadID(t *testing.T) {
	r := serveCSV(t, "id,name,author,active\nnope,Alpha,A,True\n", loansCSV)

	_, err := r.FetchBooks(context.Background())
	require.Error(t, err)
	require.Equal(t, feedrepo.ErrMalformedFeed, feedrepo.Code(err))
}

func TestFetch_SourceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	r := feedrepo.NewHTTP(srv.URL+"/books", srv.URL+"/loans", srv.Client())
	_, err := r.FetchBooks(context.Background())
	require.Error(t, err)
	require.Equal(t, feedrepo.ErrSourceUnavailable, feedrepo.Code(err))

	_, err = r.FetchLoans(context.Background())
	require.Equal(t, feedrepo.ErrSourceUnavailable, feedrepo.Code(err))
}

func TestFetch_EmptyFeeds(t *testing.T) {
	r := serveCSV(t, "id,name,author,active\n", "book_id,loaner_id,loan_date,return_date\n")

	books, err := r.FetchBooks(context.Background())
	require.NoError(t, err)
	require.Empty(t, books)

	loans, err := r.FetchLoans(context.Background())
	require.NoError(t, err)
	require.Empty(t, loans)
}

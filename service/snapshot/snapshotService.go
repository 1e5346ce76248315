package snapshotsvc

import (
	"context"
	"sync"
	"time"

	feedrepo "github.com/OriStav/LibCatalog/repository/feed"

	"github.com/OriStav/LibCatalog/model"
)

// Service hands out the memoized feed snapshot. Both feeds are fetched
// together so availability and metrics always derive from one atomic read.
type Service interface {
	Get(ctx context.Context) (model.Snapshot, error)
	Refresh(ctx context.Context) (model.Snapshot, error)
}

type service struct {
	r   feedrepo.Repo
	now func() time.Time

	mu     sync.Mutex
	cached *model.Snapshot
}

func New(r feedrepo.Repo) Service { return &service{r: r, now: time.Now} }

func (s *service) Get(ctx context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return *s.cached, nil
	}
	return s.fetchLocked(ctx)
}

// Refresh drops the cached snapshot and re-fetches. On failure the previous
// snapshot stays in place so the dashboard keeps serving stale data instead
// of going blank.
func (s *service) Refresh(ctx context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked(ctx)
}

func (s *service) fetchLocked(ctx context.Context) (model.Snapshot, error) {
	books, err := s.r.FetchBooks(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	loans, err := s.r.FetchLoans(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap := model.Snapshot{Books: books, Loans: loans, FetchedAt: s.now()}
	s.cached = &snap
	return snap, nil
}

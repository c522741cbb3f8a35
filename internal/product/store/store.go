// Package store holds the fetched product catalog and the lifecycle of the
// single read that populates it.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"catalog/internal/domain"
	apperrors "catalog/internal/errors"

	"go.uber.org/zap"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var ErrAlreadyFetched = errors.New("products already fetched")

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// Snapshot is a consistent copy of the store state. Error is empty unless
// Status is StatusError.
type Snapshot struct {
	Status   Status
	Products []domain.Product
	Error    string
}

// Store is the single source of truth for the catalog. The fetch completion
// is its only writer; everything else reads snapshots.
type Store struct {
	mu       sync.RWMutex
	status   Status
	products []domain.Product
	errMsg   string

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int

	logger *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{
		status:   StatusIdle,
		products: []domain.Product{},
		subs:     make(map[int]func(Snapshot)),
		logger:   logger,
	}
}

// Fetch performs the one read this store will ever issue. A failed read is
// recorded in the store, not returned; the only error is ErrAlreadyFetched.
func (s *Store) Fetch(ctx context.Context, repo Repository) error {
	if !s.begin() {
		return ErrAlreadyFetched
	}

	products, err := repo.FindAll(ctx)
	s.complete(products, err)
	return nil
}

// Launch runs Fetch in the background. The returned channel is closed once
// the outcome has been applied and observers notified.
func (s *Store) Launch(ctx context.Context, repo Repository) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := s.Fetch(ctx, repo); err != nil {
			s.logger.Warn("fetch not started", zap.Error(err))
		}
	}()
	return done
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called after every status transition. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) begin() bool {
	s.mu.Lock()
	if s.status != StatusIdle {
		s.mu.Unlock()
		return false
	}
	s.status = StatusLoading
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("fetching products")
	s.notify(snap)
	return true
}

func (s *Store) complete(products []domain.Product, err error) {
	s.mu.Lock()
	if err != nil {
		// The previous list stays in place.
		s.status = StatusError
		s.errMsg = apperrors.FetchMessage(err)
	} else {
		if products == nil {
			products = []domain.Product{}
		}
		s.status = StatusSuccess
		s.products = products
		s.errMsg = ""
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("fetching products failed", zap.String("message", snap.Error), zap.Error(err))
	} else {
		s.logger.Info("products fetched", zap.Int("count", len(snap.Products)))
	}
	s.notify(snap)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Status:   s.status,
		Products: slices.Clone(s.products),
		Error:    s.errMsg,
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Package allocation matches an acceptor's request against verified
// restaurant inventory, decrements the matched item and prices the transfer.
package allocation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"foodshare-api/models"
	"foodshare-api/statemachine"
	"foodshare-api/store"
)

// ErrAlreadyResolved is returned when the acceptor was allocated before.
var ErrAlreadyResolved = errors.New("acceptor request already resolved")

// StorageError wraps a failed store read or write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// Repository is the slice of the store the engine reads and mutates.
// FindAcceptorByID returns store.ErrNotFound for unknown ids.
type Repository interface {
	FindVerifiedRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FindAcceptorByID(ctx context.Context, id uint) (*models.Acceptor, error)
	SaveRestaurant(ctx context.Context, r *models.Restaurant) error
	SaveAcceptor(ctx context.Context, a *models.Acceptor) error
	AppendActivity(ctx context.Context, entry *models.ActivityLog) error
}

// Engine runs allocations one at a time, so the check-then-decrement on an
// item never interleaves with another allocation in this process.
type Engine struct {
	repo Repository
	now  func() time.Time

	mu sync.Mutex
}

type Option func(*Engine)

// WithClock overrides time.Now for expiry checks and audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(repo Repository, opts ...Option) *Engine {
	e := &Engine{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Outcome is a finished allocation plus the audit entry it appended, if the append succeeded.
type Outcome struct {
	Result
	Activity *models.ActivityLog `json:"-"`
}

// Allocate resolves acceptor id: it takes the first fresh verified item that
// covers the request, prices it, marks the acceptor verified and appends one
// audit entry. A missing match is still a successful, resolved allocation.
func (e *Engine) Allocate(ctx context.Context, id uint) (*Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	acceptor, err := e.repo.FindAcceptorByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) || (err == nil && acceptor == nil) {
		return nil, fmt.Errorf("acceptor %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, &StorageError{Op: "find acceptor", Err: err}
	}

	from, to := string(acceptor.Status()), string(models.RequestResolved)
	if err := statemachine.Acceptor.CanTransition(from, to, "system"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyResolved, err)
	}

	restaurants, err := e.repo.FindVerifiedRestaurants(ctx)
	if err != nil {
		return nil, &StorageError{Op: "find verified restaurants", Err: err}
	}

	d := Plan(*acceptor, restaurants, e.now())

	if d.Restaurant != nil {
		if err := e.repo.SaveRestaurant(ctx, d.Restaurant); err != nil {
			return nil, &StorageError{Op: "save restaurant", Err: err}
		}
	}
	if err := e.repo.SaveAcceptor(ctx, &d.Acceptor); err != nil {
		return nil, &StorageError{Op: "save acceptor", Err: err}
	}

	out := &Outcome{Result: d.Result}
	out.Data = &d.Acceptor

	// the allocation stands even if the audit trail misses it
	if err := e.repo.AppendActivity(ctx, &d.Activity); err != nil {
		log.Printf("⚠️ allocation %d: audit append failed: %v", id, err)
	} else {
		out.Activity = &d.Activity
	}
	return out, nil
}

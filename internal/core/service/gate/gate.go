package gate

import (
	"context"
	"sync/atomic"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"golang.org/x/sync/semaphore"
)

// DefaultLimit is the number of transcode slots when none is configured
const DefaultLimit = 2

// Gate is a counting admission control for heavy jobs in this process
type Gate struct {
	sem      *semaphore.Weighted
	limit    int
	inFlight atomic.Int64
}

var _ port.TranscodeGate = (*Gate)(nil)

// New creates a Gate with limit slots
func New(limit int) *Gate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Gate{
		sem:   semaphore.NewWeighted(int64(limit)),
		limit: limit,
	}
}

// Acquire waits until a slot is free or ctx is done
func (g *Gate) Acquire(ctx context.Context) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	g.inFlight.Add(1)
	return nil
}

// Release returns a slot. It must be called exactly once per successful Acquire.
func (g *Gate) Release() {
	g.inFlight.Add(-1)
	g.sem.Release(1)
}

// Run holds a slot for the duration of fn and releases it on every exit path, panics included
func (g *Gate) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := g.Acquire(ctx); err != nil {
		return err
	}
	defer g.Release()

	return fn(ctx)
}

// InFlight returns the number of held slots
func (g *Gate) InFlight() int {
	return int(g.inFlight.Load())
}

// Limit returns the slot count
func (g *Gate) Limit() int {
	return g.limit
}

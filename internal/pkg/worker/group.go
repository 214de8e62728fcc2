package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Group runs a set of fallible tasks on a pool and waits for all of them.
// A failing task does not cancel its siblings: every call runs to
// completion and the caller only observes the all-resolved result.
type Group struct {
	pool *Pool
	ctx  context.Context

	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

// Group starts a new task group bound to ctx.
func (p *Pool) Group(ctx context.Context) *Group {
	return &Group{pool: p, ctx: ctx}
}

// Go schedules fn. Tasks whose context is cancelled before they start
// record ctx.Err() instead of running.
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.mu.Lock()
	idx := len(g.errs)
	g.errs = append(g.errs, nil)
	g.mu.Unlock()

	if err := g.ctx.Err(); err != nil {
		g.record(idx, err)
		return
	}

	g.wg.Add(1)
	err := g.pool.pool.Submit(func() {
		defer g.wg.Done()
		if err := g.ctx.Err(); err != nil {
			g.record(idx, err)
			return
		}
		g.record(idx, fn(g.ctx))
	})
	if err != nil {
		g.wg.Done()
		if errors.Is(err, ants.ErrPoolClosed) {
			err = ErrPoolClosed
		}
		g.record(idx, err)
	}
}

func (g *Group) record(idx int, err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	g.errs[idx] = err
	g.mu.Unlock()
}

// Wait blocks until every task has finished and returns the error of the
// earliest-scheduled failing task.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, err := range g.errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Errors returns the per-task errors in scheduling order. Only valid after Wait.
func (g *Group) Errors() []error {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]error, len(g.errs))
	copy(out, g.errs)
	return out
}

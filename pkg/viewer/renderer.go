package viewer

import (
	"context"
	"errors"
	"image"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/dixieflatline76/Glance/config"
	"github.com/dixieflatline76/Glance/util"
	"github.com/dixieflatline76/Glance/util/log"
)

// RenderRequest asks for the filters in Filters to be applied to Image.
type RenderRequest struct {
	ItemID  string
	Image   image.Image
	Filters FilterSet
}

// RenderResult is a finished render, tagged with the ticket Submit returned.
type RenderResult struct {
	Ticket uint64
	ItemID string
	FilterResult
}

// Renderer applies filters off the UI goroutine. Only the latest request
// matters: submitting cancels whatever is in flight, and results that finish
// after a newer request was made are dropped instead of delivered.
type Renderer struct {
	tuning  config.Tuning
	deliver func(RenderResult)

	gen     util.Generation
	busy    *util.SafeFlag
	sem     *semaphore.Weighted
	limiter *rate.Limiter

	ctx    context.Context
	stop   context.CancelFunc
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRenderer creates a renderer that hands finished results to deliver.
// deliver is called from a worker goroutine.
func NewRenderer(t config.Tuning, deliver func(RenderResult)) *Renderer {
	limit := rate.Inf
	if t.RenderFPS > 0 {
		limit = rate.Limit(t.RenderFPS)
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Renderer{
		tuning:  t,
		deliver: deliver,
		busy:    util.NewSafeBool(),
		sem:     semaphore.NewWeighted(int64(max(t.RenderWorkers, 1))),
		limiter: rate.NewLimiter(limit, 1),
		ctx:     ctx,
		stop:    stop,
	}
}

// Submit starts rendering req and returns its ticket.
func (r *Renderer) Submit(req RenderRequest) uint64 {
	r.mu.Lock()
	ticket := r.gen.Next()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(r.ctx)
	r.cancel = cancel
	r.busy.Set(true)
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run(ctx, ticket, req)
	return ticket
}

// Invalidate cancels any render in flight without starting a new one.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen.Next()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.busy.Set(false)
}

// Busy reports whether the latest request is still being rendered.
func (r *Renderer) Busy() bool {
	return r.busy.Value()
}

// Stop cancels outstanding work and waits for the workers to exit.
func (r *Renderer) Stop() {
	r.stop()
	r.wg.Wait()
	r.busy.Set(false)
}

func (r *Renderer) run(ctx context.Context, ticket uint64, req RenderRequest) {
	defer r.wg.Done()

	if err := r.sem.Acquire(ctx, 1); err != nil {
		r.finish(ticket)
		return
	}
	defer r.sem.Release(1)

	if err := r.limiter.Wait(ctx); err != nil {
		r.finish(ticket)
		return
	}

	res, err := ApplyFilters(ctx, req.Image, req.Filters, r.tuning)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("Render %d failed: %v", ticket, err)
		}
		r.finish(ticket)
		return
	}

	if !r.finish(ticket) {
		log.Debugf("Render %d superseded, dropping result", ticket)
		return
	}
	r.deliver(RenderResult{Ticket: ticket, ItemID: req.ItemID, FilterResult: res})
}

// finish clears the busy flag if ticket is still the latest request and
// reports whether it was.
func (r *Renderer) finish(ticket uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.gen.IsCurrent(ticket) {
		return false
	}
	r.busy.Set(false)
	return true
}

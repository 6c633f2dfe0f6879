// Package transport owns request identity and correlation for the dashboard:
// it hands out request ids, tracks in-flight requests, matches responses
// back to what was asked, and keeps a bounded history of outcomes.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dm/esdash/internal/api"
)

// requestChannelCap bounds the request channel. A full channel suspends
// Send, which is the admission-control point against runaway fan-out.
const requestChannelCap = 10

type inFlightEntry struct {
	issuedAt time.Time
	request  api.Request
}

// Controller is the single authority for request identity and in-flight
// bookkeeping. Send and Recv may be called from different goroutines.
type Controller struct {
	dispatcher *api.Dispatcher
	reqCh      chan api.RequestEnvelope
	resCh      chan api.ResponseEnvelope
	stats      *Stats
	log        *slog.Logger

	mu       sync.Mutex
	nextID   api.RequestID
	inFlight map[api.RequestID]inFlightEntry

	now func() time.Time // overridable for tests
}

// NewController wires a Controller to the given dispatcher. Call Start to
// begin dispatching.
func NewController(d *api.Dispatcher, log *slog.Logger) *Controller {
	return &Controller{
		dispatcher: d,
		reqCh:      make(chan api.RequestEnvelope, requestChannelCap),
		resCh:      make(chan api.ResponseEnvelope, requestChannelCap),
		stats:      NewStats(),
		log:        log,
		inFlight:   make(map[api.RequestID]inFlightEntry),
		now:        time.Now,
	}
}

// Start runs the dispatcher loop until ctx is cancelled.
func (c *Controller) Start(ctx context.Context) {
	go c.dispatcher.Run(ctx, c.reqCh, c.resCh)
}

// Send allocates the next request id, records the in-flight entry, and
// forwards the envelope to the dispatcher. It blocks while the bounded
// request channel is full, and returns an error only when ctx ends first.
func (c *Controller) Send(ctx context.Context, req api.Request) (api.RequestID, error) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.inFlight[id] = inFlightEntry{issuedAt: c.now(), request: req}
	c.mu.Unlock()

	c.stats.addInFlight(1)
	c.log.Debug("send request", "id", uint64(id), "request", req.String())

	select {
	case c.reqCh <- api.RequestEnvelope{ID: id, Request: req}:
		return id, nil
	case <-ctx.Done():
		// Admission was refused; roll the entry back so the id is not
		// orphaned in the in-flight table.
		c.mu.Lock()
		delete(c.inFlight, id)
		c.mu.Unlock()
		c.stats.addInFlight(-1)
		return 0, fmt.Errorf("send request %d: %w", id, ctx.Err())
	}
}

// Recv blocks until the next completed response arrives, correlates it to
// its in-flight entry, records the outcome in history, and returns the
// envelope. A response with an unknown id indicates a correlation bug: it is
// logged and dropped, never surfaced as a backend failure.
func (c *Controller) Recv(ctx context.Context) (api.ResponseEnvelope, error) {
	for {
		var env api.ResponseEnvelope
		select {
		case env = <-c.resCh:
		case <-ctx.Done():
			return api.ResponseEnvelope{}, ctx.Err()
		}

		c.mu.Lock()
		entry, ok := c.inFlight[env.ID]
		if ok {
			delete(c.inFlight, env.ID)
		}
		c.mu.Unlock()

		if !ok {
			c.log.Error("response for unknown request id, dropping", "id", uint64(env.ID))
			continue
		}

		completedAt := c.now()
		rec := Record{
			Request:     entry.request,
			IssuedAt:    entry.issuedAt,
			CompletedAt: completedAt,
		}
		if env.Err != nil {
			rec.Failure = env.Err.Error()
		}
		c.stats.push(rec)
		c.stats.addInFlight(-1)

		c.log.Debug("recv response",
			"id", uint64(env.ID),
			"request", entry.request.String(),
			"latency", completedAt.Sub(entry.issuedAt),
			"failed", env.Err != nil)

		return env, nil
	}
}

// Stats returns the shared read handle for the render path.
func (c *Controller) Stats() *Stats {
	return c.stats
}

// inFlightCount returns the number of tracked in-flight entries.
func (c *Controller) inFlightCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inFlight)
}

package transport

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esdash/internal/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestController returns a Controller with no dispatcher attached and a
// goroutine draining the request channel so Send never blocks.
func newTestController(t *testing.T) *Controller {
	t.Helper()
	c := NewController(nil, testLogger())
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	go func() {
		for {
			select {
			case <-c.reqCh:
			case <-done:
				return
			}
		}
	}()
	return c
}

func TestSend_IDsUniqueAndIncreasing(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	var prev api.RequestID
	for i := 0; i < 50; i++ {
		id, err := c.Send(ctx, api.FetchIndices{Cluster: "a"})
		require.NoError(t, err)
		assert.Greater(t, id, prev, "ids must be strictly increasing")
		prev = id
	}
}

func TestSend_TracksInFlight(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	require.EqualValues(t, 0, c.Stats().InFlight())

	_, err := c.Send(ctx, api.FetchClusterHealth{Cluster: "a"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.Stats().InFlight())
	assert.Equal(t, 1, c.inFlightCount())

	_, err = c.Send(ctx, api.FetchIndices{Cluster: "a"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, c.Stats().InFlight())
	assert.Equal(t, 2, c.inFlightCount())
}

func TestSend_BackpressureRespectsContext(t *testing.T) {
	// No drain goroutine: fill the bounded channel, then expect the next
	// Send to give up when its context expires, rolling back the entry.
	c := NewController(nil, testLogger())
	bg := context.Background()

	for i := 0; i < requestChannelCap; i++ {
		_, err := c.Send(bg, api.FetchIndices{Cluster: "a"})
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(bg, 20*time.Millisecond)
	defer cancel()
	_, err := c.Send(ctx, api.FetchIndices{Cluster: "a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.EqualValues(t, requestChannelCap, c.Stats().InFlight())
	assert.Equal(t, requestChannelCap, c.inFlightCount())
}

func TestRecv_CorrelatesAndRecords(t *testing.T) {
	c := newTestController(t)

	issued := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	completed := issued.Add(150 * time.Millisecond)
	times := []time.Time{issued, completed}
	c.now = func() time.Time {
		next := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return next
	}

	req := api.FetchClusterHealth{Cluster: "a"}
	id, err := c.Send(context.Background(), req)
	require.NoError(t, err)

	c.resCh <- api.ResponseEnvelope{
		ID:       id,
		Response: api.ClusterHealthResponse{Cluster: "a"},
	}

	env, err := c.Recv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, env.ID)

	assert.EqualValues(t, 0, c.Stats().InFlight())
	assert.Equal(t, 0, c.inFlightCount(), "in-flight entry removed exactly once")

	rec, ok := c.Stats().Latest()
	require.True(t, ok)
	assert.Equal(t, req, rec.Request)
	assert.False(t, rec.Failed())
	assert.Equal(t, 150*time.Millisecond, rec.Latency())
}

func TestRecv_FailureRecordedNotRetried(t *testing.T) {
	c := newTestController(t)

	id, err := c.Send(context.Background(), api.FetchClusterHealth{Cluster: "a"})
	require.NoError(t, err)

	c.resCh <- api.ResponseEnvelope{ID: id, Err: errors.New("cluster unreachable")}

	env, err := c.Recv(context.Background())
	require.NoError(t, err)
	require.Error(t, env.Err)

	rec, ok := c.Stats().Latest()
	require.True(t, ok)
	assert.True(t, rec.Failed())
	assert.Contains(t, rec.Failure, "cluster unreachable")
	assert.EqualValues(t, 0, c.Stats().InFlight())

	// Nothing new was issued: failures are surfaced, never retried.
	select {
	case env := <-c.resCh:
		t.Fatalf("unexpected extra envelope: %+v", env)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestRecv_UnknownIDLoggedAndDropped(t *testing.T) {
	c := newTestController(t)

	id, err := c.Send(context.Background(), api.FetchIndices{Cluster: "b"})
	require.NoError(t, err)

	// A bogus envelope arrives first; Recv must skip it and return the
	// legitimate one without touching history or the counter for it.
	c.resCh <- api.ResponseEnvelope{ID: id + 1000, Response: api.IndicesResponse{Cluster: "x"}}
	c.resCh <- api.ResponseEnvelope{ID: id, Response: api.IndicesResponse{Cluster: "b"}}

	env, err := c.Recv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, env.ID)

	assert.Len(t, c.Stats().History(), 1)
	assert.EqualValues(t, 0, c.Stats().InFlight())
}

func TestRecv_ContextCancelled(t *testing.T) {
	c := newTestController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Recv(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStats_HistoryCompaction(t *testing.T) {
	s := NewStats()

	for i := 0; i < 2*historySize; i++ {
		s.push(Record{Request: api.FetchIndices{Cluster: "a"}})
	}
	assert.Len(t, s.History(), 2*historySize)

	// One more push exceeds 2N and compacts back down to N.
	s.push(Record{Request: api.FetchAliases{Cluster: "a"}})
	history := s.History()
	assert.Len(t, history, historySize)

	// Newest-first: the compacting push is at the front.
	assert.Equal(t, api.FetchAliases{Cluster: "a"}, history[0].Request)
}

func TestStats_NewestFirstOrdering(t *testing.T) {
	s := NewStats()
	s.push(Record{Request: api.FetchClusterHealth{Cluster: "a"}})
	s.push(Record{Request: api.FetchIndices{Cluster: "a"}})
	s.push(Record{Request: api.FetchAliases{Cluster: "a"}})

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, api.FetchAliases{Cluster: "a"}, history[0].Request)
	assert.Equal(t, api.FetchIndices{Cluster: "a"}, history[1].Request)
	assert.Equal(t, api.FetchClusterHealth{Cluster: "a"}, history[2].Request)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, history[0], latest)
}

func TestStats_LatestEmpty(t *testing.T) {
	s := NewStats()
	_, ok := s.Latest()
	assert.False(t, ok)
}

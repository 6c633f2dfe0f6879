package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dm/esdash/internal/client"
)

// Dispatcher fans request envelopes out to per-cluster clients. Each request
// runs on its own goroutine so a slow backend never delays an unrelated
// request; responses therefore complete in arbitrary order.
//
// The client map is shared read-only state: it is built once and never
// mutated after construction, so dispatch goroutines read it without copies
// or locks.
type Dispatcher struct {
	clients map[string]client.ESClient
	log     *slog.Logger
}

// NewDispatcher builds a Dispatcher over the given name→client map.
func NewDispatcher(clients map[string]client.ESClient, log *slog.Logger) *Dispatcher {
	return &Dispatcher{clients: clients, log: log}
}

// Run receives request envelopes until reqCh closes or ctx is cancelled.
// Every envelope is handled on its own goroutine and answered on resCh with
// the original request id. Handler errors become the envelope's Err; they
// never terminate the loop.
func (d *Dispatcher) Run(ctx context.Context, reqCh <-chan RequestEnvelope, resCh chan<- ResponseEnvelope) {
	d.log.Info("dispatcher running")
	defer d.log.Info("dispatcher done")

	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-reqCh:
			if !ok {
				return
			}
			d.log.Debug("dispatch request", "id", uint64(env.ID), "request", env.Request.String())

			go func(env RequestEnvelope) {
				res, err := d.handle(ctx, env.Request)
				select {
				case resCh <- ResponseEnvelope{ID: env.ID, Response: res, Err: err}:
				case <-ctx.Done():
				}
			}(env)
		}
	}
}

// handle routes a request to the matching client operation.
func (d *Dispatcher) handle(ctx context.Context, req Request) (Response, error) {
	switch req := req.(type) {
	case FetchClusterHealth:
		c, err := d.lookupCluster(req.Cluster)
		if err != nil {
			return nil, err
		}
		health, err := c.GetClusterHealth(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch cluster health: %w", err)
		}
		return ClusterHealthResponse{Cluster: req.Cluster, Health: *health}, nil

	case FetchIndices:
		c, err := d.lookupCluster(req.Cluster)
		if err != nil {
			return nil, err
		}
		indices, err := c.GetIndices(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch indices: %w", err)
		}
		return IndicesResponse{Cluster: req.Cluster, Indices: indices}, nil

	case FetchAliases:
		c, err := d.lookupCluster(req.Cluster)
		if err != nil {
			return nil, err
		}
		aliases, err := c.GetAliases(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch aliases: %w", err)
		}
		return AliasesResponse{Cluster: req.Cluster, Aliases: aliases}, nil

	case FetchIndexDetail:
		c, err := d.lookupCluster(req.Cluster)
		if err != nil {
			return nil, err
		}
		detail, err := c.GetIndexDetail(ctx, req.Index)
		if err != nil {
			return nil, fmt.Errorf("fetch index detail: %w", err)
		}
		return IndexDetailResponse{Cluster: req.Cluster, Index: req.Index, Detail: *detail}, nil

	default:
		return nil, fmt.Errorf("unhandled request type %T", req)
	}
}

func (d *Dispatcher) lookupCluster(name string) (client.ESClient, error) {
	c, ok := d.clients[name]
	if !ok {
		return nil, fmt.Errorf("no client configured for cluster %q", name)
	}
	return c, nil
}

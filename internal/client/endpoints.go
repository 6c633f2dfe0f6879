package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	endpointClusterHealth = "/_cluster/health?filter_path=cluster_name,status,number_of_nodes,number_of_data_nodes,active_shards,active_primary_shards,initializing_shards,relocating_shards,unassigned_shards,delayed_unassigned_shards,number_of_in_flight_fetch,number_of_pending_tasks,task_max_waiting_in_queue_millis,active_shards_percent_as_number"
	endpointIndices       = "/_cat/indices?format=json&bytes=b&h=index,uuid,health,status,pri,rep,docs.count,docs.deleted,store.size,pri.store.size&s=index"
	endpointAliases       = "/_cat/aliases?format=json&h=alias,index,filter,routing.index,routing.search,is_write_index&s=alias"
)

// GetClusterHealth fetches cluster health from /_cluster/health.
func (c *DefaultClient) GetClusterHealth(ctx context.Context) (*ClusterHealth, error) {
	body, err := c.doGet(ctx, endpointClusterHealth)
	if err != nil {
		return nil, fmt.Errorf("GetClusterHealth: %w", err)
	}

	var result ClusterHealth
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetClusterHealth decode: %w", err)
	}
	return &result, nil
}

// GetIndices fetches the list of indices from /_cat/indices.
func (c *DefaultClient) GetIndices(ctx context.Context) ([]CatIndex, error) {
	body, err := c.doGet(ctx, endpointIndices)
	if err != nil {
		return nil, fmt.Errorf("GetIndices: %w", err)
	}

	var result []CatIndex
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetIndices decode: %w", err)
	}
	return result, nil
}

// GetAliases fetches the list of aliases from /_cat/aliases.
func (c *DefaultClient) GetAliases(ctx context.Context) ([]CatAlias, error) {
	body, err := c.doGet(ctx, endpointAliases)
	if err != nil {
		return nil, fmt.Errorf("GetAliases: %w", err)
	}

	var result []CatAlias
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetAliases decode: %w", err)
	}
	return result, nil
}

// GetIndexDetail fetches aliases and settings for a single index via
// GET /<index>. The response is keyed by index name; a missing key means the
// index does not exist (ES would normally answer 404 first).
func (c *DefaultClient) GetIndexDetail(ctx context.Context, index string) (*IndexDetail, error) {
	if index == "" {
		return nil, fmt.Errorf("GetIndexDetail: index name must not be empty")
	}

	path := "/" + url.PathEscape(index) + "?filter_path=*.aliases,*.settings.index"
	body, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("GetIndexDetail %s: %w", index, err)
	}

	var result map[string]IndexDetail
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetIndexDetail %s decode: %w", index, err)
	}

	detail, ok := result[index]
	if !ok {
		return nil, fmt.Errorf("GetIndexDetail: index %q not in response", index)
	}
	return &detail, nil
}

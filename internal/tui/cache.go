package tui

import (
	"sort"
	"strings"

	"github.com/dm/esdash/internal/client"
)

// systemPrefix marks reserved indices and aliases hidden from tables by
// default.
const systemPrefix = "."

// resourceCache holds the most recent successful response of each kind per
// cluster. Writes fully replace the prior snapshot of that kind; nothing is
// ever proactively invalidated. Owned and mutated exclusively by the App
// update path.
type resourceCache struct {
	clusters map[string]*clusterData
}

type clusterData struct {
	health  *client.ClusterHealth
	indices []client.CatIndex
	aliases []client.CatAlias
	details map[string]client.IndexDetail
}

func newResourceCache() *resourceCache {
	return &resourceCache{clusters: make(map[string]*clusterData)}
}

func (c *resourceCache) data(cluster string) *clusterData {
	d, ok := c.clusters[cluster]
	if !ok {
		d = &clusterData{details: make(map[string]client.IndexDetail)}
		c.clusters[cluster] = d
	}
	return d
}

// SetHealth replaces the health snapshot for cluster.
func (c *resourceCache) SetHealth(cluster string, health client.ClusterHealth) {
	c.data(cluster).health = &health
}

// Health returns the last known health snapshot for cluster.
func (c *resourceCache) Health(cluster string) (client.ClusterHealth, bool) {
	d, ok := c.clusters[cluster]
	if !ok || d.health == nil {
		return client.ClusterHealth{}, false
	}
	return *d.health, true
}

// SetIndices replaces the index listing for cluster, sorted by name.
func (c *resourceCache) SetIndices(cluster string, indices []client.CatIndex) {
	sorted := make([]client.CatIndex, len(indices))
	copy(sorted, indices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	c.data(cluster).indices = sorted
}

// VisibleIndices returns the cached indices for cluster. Unless showSystem
// is set, entries with the reserved prefix are hidden — filtering happens at
// read time only, so the cache keeps the full listing. The second return is
// false when no listing has been cached yet.
func (c *resourceCache) VisibleIndices(cluster string, showSystem bool) ([]client.CatIndex, bool) {
	d, ok := c.clusters[cluster]
	if !ok || d.indices == nil {
		return nil, false
	}
	if showSystem {
		return d.indices, true
	}
	visible := make([]client.CatIndex, 0, len(d.indices))
	for _, idx := range d.indices {
		if !strings.HasPrefix(idx.Index, systemPrefix) {
			visible = append(visible, idx)
		}
	}
	return visible, true
}

// SetAliases replaces the alias listing for cluster, sorted by alias name.
func (c *resourceCache) SetAliases(cluster string, aliases []client.CatAlias) {
	sorted := make([]client.CatAlias, len(aliases))
	copy(sorted, aliases)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Alias < sorted[j].Alias })
	c.data(cluster).aliases = sorted
}

// VisibleAliases returns the cached aliases for cluster, hiding
// reserved-prefix entries unless showSystem is set.
func (c *resourceCache) VisibleAliases(cluster string, showSystem bool) ([]client.CatAlias, bool) {
	d, ok := c.clusters[cluster]
	if !ok || d.aliases == nil {
		return nil, false
	}
	if showSystem {
		return d.aliases, true
	}
	visible := make([]client.CatAlias, 0, len(d.aliases))
	for _, a := range d.aliases {
		if !strings.HasPrefix(a.Alias, systemPrefix) {
			visible = append(visible, a)
		}
	}
	return visible, true
}

// SetDetail replaces the detail snapshot for one index of cluster.
func (c *resourceCache) SetDetail(cluster, index string, detail client.IndexDetail) {
	c.data(cluster).details[index] = detail
}

// Detail returns the last known detail for one index of cluster.
func (c *resourceCache) Detail(cluster, index string) (client.IndexDetail, bool) {
	d, ok := c.clusters[cluster]
	if !ok {
		return client.IndexDetail{}, false
	}
	detail, ok := d.details[index]
	return detail, ok
}

package tui

import "github.com/dm/esdash/internal/api"

// fetchPlan is a pure function of navigation state: it returns the requests
// needed to populate the current view. Called once before the first render
// and after every transition that can change the effective query parameters.
// Calling it twice with unchanged state yields the same request set.
func fetchPlan(nav navState, clusters []string) []api.Request {
	if nav.selectedResource != ResourceElasticsearch {
		return nil
	}
	if nav.clusterCursor < 0 || nav.clusterCursor >= len(clusters) {
		return nil
	}
	cluster := clusters[nav.clusterCursor]

	// A drill-down narrows the plan to the single entered key.
	if nav.entered == ComponentIndexDetail && nav.enteredIndex != "" {
		return []api.Request{api.FetchIndexDetail{Cluster: cluster, Index: nav.enteredIndex}}
	}

	if nav.esResourceCursor < 0 || nav.esResourceCursor >= len(esResources) {
		return nil
	}
	switch esResources[nav.esResourceCursor] {
	case esResourceCluster:
		return []api.Request{api.FetchClusterHealth{Cluster: cluster}}
	case esResourceIndex:
		return []api.Request{api.FetchIndices{Cluster: cluster}}
	case esResourceAlias:
		return []api.Request{api.FetchAliases{Cluster: cluster}}
	}
	return nil
}

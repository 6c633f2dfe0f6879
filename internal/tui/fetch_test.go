package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esdash/internal/api"
)

var testClusters = []string{"a", "b", "c"}

func TestFetchPlanDefaultState(t *testing.T) {
	nav := newNavState()
	plan := fetchPlan(nav, testClusters)
	require.Len(t, plan, 1)
	assert.Equal(t, api.FetchClusterHealth{Cluster: "a"}, plan[0])
}

func TestFetchPlanIsIdempotent(t *testing.T) {
	nav := newNavState()
	nav.clusterCursor = 1
	nav.esResourceCursor = 1

	first := fetchPlan(nav, testClusters)
	second := fetchPlan(nav, testClusters)
	assert.Equal(t, first, second)
}

func TestFetchPlanFollowsResourceCursor(t *testing.T) {
	nav := newNavState()
	nav.clusterCursor = 2

	nav.esResourceCursor = 0
	assert.Equal(t, []api.Request{api.FetchClusterHealth{Cluster: "c"}}, fetchPlan(nav, testClusters))

	nav.esResourceCursor = 1
	assert.Equal(t, []api.Request{api.FetchIndices{Cluster: "c"}}, fetchPlan(nav, testClusters))

	nav.esResourceCursor = 2
	assert.Equal(t, []api.Request{api.FetchAliases{Cluster: "c"}}, fetchPlan(nav, testClusters))
}

func TestFetchPlanNarrowsOnDrillDown(t *testing.T) {
	nav := newNavState()
	nav.clusterCursor = 1
	nav.esResourceCursor = 1
	nav.enter(ComponentIndexDetail, "logs-2024")

	plan := fetchPlan(nav, testClusters)
	require.Len(t, plan, 1)
	assert.Equal(t, api.FetchIndexDetail{Cluster: "b", Index: "logs-2024"}, plan[0])

	nav.leave()
	plan = fetchPlan(nav, testClusters)
	require.Len(t, plan, 1)
	assert.Equal(t, api.FetchIndices{Cluster: "b"}, plan[0])
}

func TestFetchPlanEmptyOnOtherResources(t *testing.T) {
	nav := newNavState()
	nav.selectedResource = ResourceMongo
	assert.Nil(t, fetchPlan(nav, testClusters))

	nav.selectedResource = ResourceRabbitMQ
	assert.Nil(t, fetchPlan(nav, testClusters))
}

func TestFetchPlanEmptyWithoutClusters(t *testing.T) {
	nav := newNavState()
	assert.Nil(t, fetchPlan(nav, nil))

	nav.clusterCursor = 99
	assert.Nil(t, fetchPlan(nav, testClusters))
}

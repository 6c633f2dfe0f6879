package client

import "encoding/json"

// ClusterHealth represents the response from /_cluster/health.
type ClusterHealth struct {
	ClusterName                 string  `json:"cluster_name"`
	Status                      string  `json:"status"`
	NumberOfNodes               int     `json:"number_of_nodes"`
	NumberOfDataNodes           int     `json:"number_of_data_nodes"`
	ActiveShards                int     `json:"active_shards"`
	ActivePrimaryShards         int     `json:"active_primary_shards"`
	InitializingShards          int     `json:"initializing_shards"`
	RelocatingShards            int     `json:"relocating_shards"`
	UnassignedShards            int     `json:"unassigned_shards"`
	DelayedUnassignedShards     int     `json:"delayed_unassigned_shards"`
	NumberOfInFlightFetch       int     `json:"number_of_in_flight_fetch"`
	NumberOfPendingTasks        int     `json:"number_of_pending_tasks"`
	TaskMaxWaitingInQueueMillis int64   `json:"task_max_waiting_in_queue_millis"`
	ActiveShardsPercentAsNumber float64 `json:"active_shards_percent_as_number"`
}

// CatIndex represents a single index entry from /_cat/indices.
// The cat API returns every column as a string; store sizes are raw byte
// counts because requests pass bytes=b.
type CatIndex struct {
	Index        string `json:"index"`
	UUID         string `json:"uuid"`
	Health       string `json:"health"`
	Status       string `json:"status"`
	Pri          string `json:"pri"`
	Rep          string `json:"rep"`
	DocsCount    string `json:"docs.count"`
	DocsDeleted  string `json:"docs.deleted"`
	StoreSize    string `json:"store.size"`
	PriStoreSize string `json:"pri.store.size"`
}

// CatAlias represents a single alias entry from /_cat/aliases.
type CatAlias struct {
	Alias         string `json:"alias"`
	Index         string `json:"index"`
	Filter        string `json:"filter"`
	RoutingIndex  string `json:"routing.index"`
	RoutingSearch string `json:"routing.search"`
	IsWriteIndex  string `json:"is_write_index"`
}

// IndexDetail represents one index's entry from GET /<index>.
type IndexDetail struct {
	Aliases  map[string]json.RawMessage `json:"aliases"`
	Settings IndexSettings              `json:"settings"`
}

// IndexSettings wraps the "settings.index" object of an index detail response.
type IndexSettings struct {
	Index IndexSettingsIndex `json:"index"`
}

// IndexSettingsIndex holds the static index settings shown in the detail view.
// Settings values arrive as strings regardless of their logical type.
type IndexSettingsIndex struct {
	NumberOfShards   string `json:"number_of_shards"`
	NumberOfReplicas string `json:"number_of_replicas"`
	ProvidedName     string `json:"provided_name"`
	UUID             string `json:"uuid"`
	CreationDate     string `json:"creation_date"`
}

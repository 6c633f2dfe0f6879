package api

import (
	"fmt"

	"github.com/dm/esdash/internal/client"
)

// RequestID correlates an issued request with its eventual response. IDs are
// allocated by the transport controller and are strictly increasing within a
// process.
type RequestID uint64

// Request names a backend operation and its parameters. The variant set is
// closed: the dispatcher routes by type switch, and adding a variant means
// adding a case there.
type Request interface {
	fmt.Stringer
	isRequest()
}

// FetchClusterHealth requests the health summary for one cluster.
type FetchClusterHealth struct {
	Cluster string
}

// FetchIndices requests the index listing for one cluster.
type FetchIndices struct {
	Cluster string
}

// FetchAliases requests the alias listing for one cluster.
type FetchAliases struct {
	Cluster string
}

// FetchIndexDetail requests settings and aliases for a single index.
type FetchIndexDetail struct {
	Cluster string
	Index   string
}

func (FetchClusterHealth) isRequest() {}
func (FetchIndices) isRequest()       {}
func (FetchAliases) isRequest()       {}
func (FetchIndexDetail) isRequest()   {}

func (r FetchClusterHealth) String() string {
	return fmt.Sprintf("cluster health cluster=%s", r.Cluster)
}

func (r FetchIndices) String() string {
	return fmt.Sprintf("indices cluster=%s", r.Cluster)
}

func (r FetchAliases) String() string {
	return fmt.Sprintf("aliases cluster=%s", r.Cluster)
}

func (r FetchIndexDetail) String() string {
	return fmt.Sprintf("index detail cluster=%s index=%s", r.Cluster, r.Index)
}

// Response carries the typed payload of a completed request.
type Response interface {
	isResponse()
}

// ClusterHealthResponse answers a FetchClusterHealth request.
type ClusterHealthResponse struct {
	Cluster string
	Health  client.ClusterHealth
}

// IndicesResponse answers a FetchIndices request.
type IndicesResponse struct {
	Cluster string
	Indices []client.CatIndex
}

// AliasesResponse answers a FetchAliases request.
type AliasesResponse struct {
	Cluster string
	Aliases []client.CatAlias
}

// IndexDetailResponse answers a FetchIndexDetail request.
type IndexDetailResponse struct {
	Cluster string
	Index   string
	Detail  client.IndexDetail
}

func (ClusterHealthResponse) isResponse() {}
func (IndicesResponse) isResponse()       {}
func (AliasesResponse) isResponse()       {}
func (IndexDetailResponse) isResponse()   {}

// RequestEnvelope pairs a request with its correlation id on the way to the
// dispatcher.
type RequestEnvelope struct {
	ID      RequestID
	Request Request
}

// ResponseEnvelope pairs a completed result with the id of the request that
// produced it. Exactly one of Response and Err is set.
type ResponseEnvelope struct {
	ID       RequestID
	Response Response
	Err      error
}

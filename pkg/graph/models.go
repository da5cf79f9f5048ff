package graph

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// HealthResponse reports server and subsystem health.
type HealthResponse struct {
	Status     string         `json:"status"`
	BootStatus string         `json:"bootStatus"`
	Governance map[string]any `json:"governance,omitempty"`
	Storage    map[string]any `json:"storage,omitempty"`
	Memory     map[string]any `json:"memory,omitempty"`
}

// GenomeMetadata describes the genome the server is running.
type GenomeMetadata struct {
	GenomeID     string           `json:"genome_id"`
	Name         string           `json:"name"`
	Version      string           `json:"version"`
	Parents      []string         `json:"parents"`
	CreatedAt    string           `json:"created_at"`
	Invariants   []map[string]any `json:"invariants"`
	Capabilities []map[string]any `json:"capabilities"`
}

// CreatedTime parses CreatedAt.
func (g GenomeMetadata) CreatedTime() (time.Time, error) {
	return parseTimestamp("created_at", g.CreatedAt)
}

// Node is a vertex of the memory graph.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Data     map[string]any `json:"data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Edge is a directed relation between two nodes.
type Edge struct {
	ID       string         `json:"id"`
	Source   string         `json:"source"`
	Target   string         `json:"target"`
	Type     string         `json:"type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Receipt is the audit record the server attaches to a governed write.
type Receipt struct {
	Timestamp     string  `json:"timestamp"`
	JobID         string  `json:"job_id"`
	Stage         string  `json:"stage"`
	Action        string  `json:"action"`
	Decision      string  `json:"decision"`
	PolicyID      *string `json:"policy_id,omitempty"`
	GenomeID      *string `json:"genome_id,omitempty"`
	GenomeVersion *string `json:"genome_version,omitempty"`
}

// Time parses Timestamp.
func (r Receipt) Time() (time.Time, error) {
	return parseTimestamp("timestamp", r.Timestamp)
}

// CreateNodeResponse is returned by CreateNode. Created is false when the
// idempotency key matched an earlier write.
type CreateNodeResponse struct {
	Node    Node     `json:"node"`
	Created bool     `json:"created"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

// CreateEdgeResponse is returned by CreateEdge.
type CreateEdgeResponse struct {
	Edge    Edge     `json:"edge"`
	Created bool     `json:"created"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

// SearchResponse holds the nodes matching a search.
type SearchResponse struct {
	Query   string `json:"query"`
	Limit   int    `json:"limit"`
	Count   int    `json:"count"`
	Results []Node `json:"results"`
}

// JobStatus is the state of a job. Values other than the ones below decode
// without error.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether the job will not change state again.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// JobResult is the state of one job.
type JobResult struct {
	JobID         string         `json:"job_id"`
	Status        JobStatus      `json:"status"`
	Outputs       map[string]any `json:"outputs,omitempty"`
	GenomeID      *string        `json:"genome_id,omitempty"`
	GenomeVersion *string        `json:"genome_version,omitempty"`
}

// JobStatusResponse is returned by JobStatus. Job is set when the server
// answered with a single job; Raw always holds the body, whatever its shape.
type JobStatusResponse struct {
	Job *JobResult
	Raw any
}

// InterpretResponse is the server's reading of a piece of text.
type InterpretResponse struct {
	Interpretation string           `json:"interpretation"`
	Confidence     float64          `json:"confidence"`
	Citations      []map[string]any `json:"citations"`
	Genome         map[string]any   `json:"genome,omitempty"`
}

// RunJobRequest starts a job.
type RunJobRequest struct {
	JobType  string
	Inputs   map[string]any
	PolicyID *string
}

// JobQuery selects jobs for JobStatus and JobLogs. Nil fields are not sent.
type JobQuery struct {
	JobID *string
	Limit *int
}

// ResumeJobRequest resumes a job. With a nil JobID no body is sent and the
// server picks the job.
type ResumeJobRequest struct {
	JobID *string
}

// CreateNodeRequest describes a node write. IdempotencyKey makes retries
// safe; ID lets the caller choose the node id.
type CreateNodeRequest struct {
	IdempotencyKey string
	Type           string
	Data           map[string]any
	Metadata       map[string]any
	ID             *string
}

// UpdateNodeRequest changes the fields that are set.
type UpdateNodeRequest struct {
	Type     *string
	Data     map[string]any
	Metadata map[string]any
}

// CreateEdgeRequest describes an edge write from one node to another.
type CreateEdgeRequest struct {
	IdempotencyKey string
	From           string
	To             string
	Type           string
	Metadata       map[string]any
}

// SearchOptions tunes SearchNodes.
type SearchOptions struct {
	Limit *int // defaults to DefaultSearchLimit
}

// DefaultSearchLimit is the limit sent by SearchNodes when none is given.
const DefaultSearchLimit = 10

// InterpretOptions tunes Interpret.
type InterpretOptions struct {
	Limit *int
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return t, nil
}

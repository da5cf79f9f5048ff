package graph

import (
	"context"
	"fmt"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// RunJob starts a job and returns its initial state.
func (c *Client) RunJob(ctx context.Context, req RunJobRequest) (*JobResult, error) {
	payload := apiclient.Payload{}.
		Set("jobType", req.JobType).
		SetMap("inputs", req.Inputs).
		SetString("policyId", req.PolicyID)

	raw, err := c.api.Post(ctx, "/jobs/run", payload)
	return decodeRef[JobResult]("run job", raw, err)
}

// JobStatus returns the status of a job, or the server's job listing when
// no single job matches.
func (c *Client) JobStatus(ctx context.Context, query JobQuery) (*JobStatusResponse, error) {
	raw, err := c.api.Get(ctx, "/jobs/status", query.params())
	if err != nil {
		return nil, fmt.Errorf("failed to get job status: %w", err)
	}

	resp := &JobStatusResponse{Raw: raw}
	body, _ := raw.(map[string]any)
	if _, ok := body["job_id"]; ok {
		job, err := decodeRef[JobResult]("get job status", body, nil)
		if err != nil {
			return nil, err
		}
		resp.Job = job
	}
	return resp, nil
}

// JobLogs returns job log entries.
func (c *Client) JobLogs(ctx context.Context, query JobQuery) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/jobs/logs", query.params())
	return decode[map[string]any]("get job logs", raw, err)
}

// ResumeJob resumes a suspended job.
func (c *Client) ResumeJob(ctx context.Context, req ResumeJobRequest) (map[string]any, error) {
	var body any
	if req.JobID != nil {
		body = apiclient.Payload{}.SetString("job_id", req.JobID)
	}

	raw, err := c.api.Post(ctx, "/jobs/resume", body)
	return decode[map[string]any]("resume job", raw, err)
}

func (q JobQuery) params() apiclient.Query {
	return apiclient.Query{}.
		SetString("job_id", q.JobID).
		SetInt("limit", q.Limit)
}

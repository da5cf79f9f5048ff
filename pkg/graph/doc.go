// Package graph is the client for the Mathison genome, jobs and memory-graph
// API.
//
// # Overview
//
// The memory graph is made of nodes, directed edges between two nodes, and
// hyperedges joining any number of nodes. Writes carry an idempotency key; the
// server answers with the stored entity, whether it was newly created, and an
// optional Receipt recording the governance decision.
//
//	client, err := graph.New(&apiclient.Config{BaseURL: addr, APIKey: key})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	resp, err := client.CreateNode(ctx, graph.CreateNodeRequest{
//		IdempotencyKey: uuid.NewString(),
//		Type:           "concept",
//		Data:           map[string]any{"label": "gravity"},
//	})
//
// # Jobs
//
// RunJob starts a job; JobStatus, JobLogs and ResumeJob inspect and continue
// it. JobStatus answers with a typed JobResult when the server describes a
// single job and always keeps the raw body.
//
// # Async
//
// AsyncClient wraps any API and returns an apiclient.Future per call. Close
// waits for outstanding calls before releasing the transport.
package graph

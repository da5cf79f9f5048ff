// Package apiclient is the transport shared by the Mathison API clients.
//
// # Overview
//
// A Client holds a base URL, an optional bearer credential, and a timeout, and
// performs exactly one HTTP request per call. Responses are returned as
// untyped JSON (the result of encoding/json decoding into an interface{}) and
// converted into typed models with Decode.
//
//	c, err := apiclient.New(&apiclient.Config{
//	  BaseURL: "https://mathison.example.com",
//	  APIKey:  os.Getenv("MATHISON_API_KEY"),
//	})
//	if err != nil {
//	  return err
//	}
//	defer c.Close()
//
//	raw, err := c.Get(ctx, "/health", nil)
//
// # Optional values
//
// Query and Payload skip nil pointers, nil slices, and nil maps. A value the
// caller never set is absent from the request rather than sent as null, while
// an explicit empty string, zero, or empty list is sent as-is.
//
// # Error Handling
//
// Every failed request returns a *RequestError, which matches ErrRequestFailed
// through errors.Is. Its cause is either a transport error or a *StatusError
// for a non-2xx response; StatusCode recovers the status. The client does not
// retry and does not tell 4xx from 5xx.
//
// A request that succeeds but whose body does not fit the target model fails
// in Decode instead, with a *DecodeError. It does not match ErrRequestFailed.
//
// # Concurrency
//
// Calls block the calling goroutine. Submit runs a call on its own goroutine
// and returns a Future; an Executor tracks those calls so a client can drain
// them before closing.
package apiclient

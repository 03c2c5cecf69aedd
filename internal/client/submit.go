// Package client implements the query submitter used by the CLI and any
// other frontend: one POST round trip per invocation, with results delivered
// through a Sink instead of ambient output state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultEndpoint is the backend base URL used when none is configured.
const DefaultEndpoint = "http://127.0.0.1:8000"

// ErrEmptyQuery is returned before any network activity when the trimmed
// query is empty. Callers surface it to the user as a validation alert.
var ErrEmptyQuery = errors.New("query must not be empty")

// undefinedField is rendered in place of any field the backend omitted.
const undefinedField = "undefined"

// Submitter performs one request/response cycle against the backend.
//
// Each invocation is a single attempt: no retries and no client-side timeout
// beyond the caller's context. Concurrent invocations are independent, but
// only the most recently issued one may write to the sink, so a slow earlier
// response can never overwrite a later result.
type Submitter struct {
	endpoint string
	client   *http.Client
	sink     Sink

	mu  sync.Mutex
	seq atomic.Uint64
}

func NewSubmitter(endpoint string, sink Sink) (*Submitter, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("backend endpoint cannot be empty")
	}
	if sink == nil {
		return nil, fmt.Errorf("sink cannot be empty")
	}
	return &Submitter{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   &http.Client{},
		sink:     sink,
	}, nil
}

// Submit sends query to the backend's /query endpoint and delivers the
// outcome to the sink. The raw query is submitted as-is; trimming is applied
// only for the emptiness check.
func (s *Submitter) Submit(ctx context.Context, query string) error {
	return s.submit(ctx, s.endpoint+"/query", query)
}

// SubmitTo bypasses routing and queries one named agent directly.
func (s *Submitter) SubmitTo(ctx context.Context, agentName string, query string) error {
	return s.submit(ctx, s.endpoint+"/agent/"+agentName, query)
}

func (s *Submitter) submit(ctx context.Context, url string, query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}

	seq := s.seq.Add(1)
	s.apply(seq, func() { s.sink.Processing() })

	body, err := json.Marshal(struct {
		Query string `json:"query"`
	}{Query: query})
	if err != nil {
		s.apply(seq, func() { s.sink.Failure(s.failureMessage()) })
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.apply(seq, func() { s.sink.Failure(s.failureMessage()) })
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.apply(seq, func() { s.sink.Failure(s.failureMessage()) })
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// The backend wraps its own failures in the same JSON envelope, so the
	// status code is not inspected: anything that decodes is rendered.
	result, err := decodeResult(resp.Body)
	if err != nil {
		s.apply(seq, func() { s.sink.Failure(s.failureMessage()) })
		return fmt.Errorf("failed to decode response: %w", err)
	}

	s.apply(seq, func() { s.sink.Render(result) })
	return nil
}

// apply runs fn only if seq still identifies the most recent invocation.
func (s *Submitter) apply(seq uint64, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq.Load() {
		return
	}
	fn()
}

func (s *Submitter) failureMessage() string {
	return fmt.Sprintf("Error: Unable to reach the backend. Please make sure the server is running at %s.", s.endpoint)
}

// Result is the validated shape rendered to the user.
type Result struct {
	AgentName string
	Response  string
	Status    string
}

func decodeResult(r io.Reader) (Result, error) {
	// Pointer fields distinguish missing from empty: a field the backend
	// omitted renders as the literal text "undefined".
	var payload struct {
		AgentName *string `json:"agent_name"`
		Response  *string `json:"response"`
		Status    *string `json:"status"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return Result{}, err
	}

	return Result{
		AgentName: stringOr(payload.AgentName, undefinedField),
		Response:  stringOr(payload.Response, undefinedField),
		Status:    stringOr(payload.Status, undefinedField),
	}, nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingSink captures every sink event in order.
type recordingSink struct {
	mu       sync.Mutex
	events   []string
	results  []Result
	failures []string
}

func (r *recordingSink) Processing() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "processing")
}

func (r *recordingSink) Render(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "render")
	r.results = append(r.results, res)
}

func (r *recordingSink) Failure(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "failure")
	r.failures = append(r.failures, message)
}

func (r *recordingSink) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func TestSubmitEmptyQueryDoesNotCallBackend(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n  \n"} {
		err := s.Submit(context.Background(), query)
		assert.ErrorIs(t, err, ErrEmptyQuery, "query %q should fail validation", query)
	}

	assert.Equal(t, int64(0), hits.Load(), "no request should be issued for empty input")
	assert.Empty(t, sink.snapshot(), "sink should not be touched before validation passes")
}

func TestSubmitIssuesSinglePostWithRawQuery(t *testing.T) {
	var (
		hits      atomic.Int64
		gotPath   string
		gotMethod string
		gotCT     string
		gotBody   []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"agent_name": "Bot", "response": "Hello", "status": "success"}`))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	// raw input is submitted as-is, trim is only for the emptiness check
	err = s.Submit(context.Background(), "  what is recursion?  ")
	assert.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load(), "exactly one request per invocation")
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/query", gotPath)
	assert.Equal(t, "application/json", gotCT)

	var req map[string]string
	assert.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "  what is recursion?  ", req["query"])

	assert.Equal(t, []string{"processing", "render"}, sink.snapshot())
	assert.Equal(t, Result{AgentName: "Bot", Response: "Hello", Status: "success"}, sink.results[0])
}

func TestSubmitToQueriesAgentDirectly(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"agent_name": "exam_prep", "response": "Q1...", "status": "success"}`))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	assert.NoError(t, s.SubmitTo(context.Background(), "exam_prep", "B-trees"))
	assert.Equal(t, "/agent/exam_prep", gotPath)
	assert.Equal(t, "exam_prep", sink.results[0].AgentName)
}

func TestSubmitRendersMissingFieldsAsUndefined(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"agent_name": "Bot"}`))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	assert.NoError(t, s.Submit(context.Background(), "hi"))
	assert.Equal(t, "Bot", sink.results[0].AgentName)
	assert.Equal(t, "undefined", sink.results[0].Response)
	assert.Equal(t, "undefined", sink.results[0].Status)
}

func TestSubmitRendersBackendErrorEnvelope(t *testing.T) {
	// non-2xx responses that still carry the JSON envelope render like any result
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"agent_name": "error", "response": "An error occurred: boom", "status": "error"}`))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	assert.NoError(t, s.Submit(context.Background(), "hi"))
	assert.Equal(t, []string{"processing", "render"}, sink.snapshot())
	assert.Equal(t, "error", sink.results[0].Status)
}

func TestSubmitConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := ts.URL
	ts.Close() // connection refused from here on

	sink := &recordingSink{}
	s, err := NewSubmitter(endpoint, sink)
	assert.NoError(t, err)

	err = s.Submit(context.Background(), "hi")
	assert.Error(t, err)
	assert.Equal(t, []string{"processing", "failure"}, sink.snapshot())
	assert.Contains(t, sink.failures[0], "Please make sure the server is running at")
	assert.Contains(t, sink.failures[0], endpoint)
}

func TestSubmitNonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	err = s.Submit(context.Background(), "hi")
	assert.Error(t, err)
	assert.Equal(t, []string{"processing", "failure"}, sink.snapshot())
}

func TestDefaultEndpointFailureMessageNamesAddress(t *testing.T) {
	sink := &recordingSink{}
	s, err := NewSubmitter(DefaultEndpoint, sink)
	assert.NoError(t, err)

	assert.Contains(t, s.failureMessage(), "127.0.0.1:8000")
}

func TestProcessingShownWhileInFlight(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		_, _ = w.Write([]byte(`{"agent_name": "Bot", "response": "late", "status": "success"}`))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), "hi") }()

	<-arrived
	// request is in flight: only the placeholder has been shown
	assert.Equal(t, []string{"processing"}, sink.snapshot())

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, []string{"processing", "render"}, sink.snapshot())
}

func TestLatestInvocationWins(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		_ = json.Unmarshal(body, &req)

		if req["query"] == "slow" {
			close(firstArrived)
			<-releaseFirst
			_, _ = w.Write([]byte(`{"agent_name": "Bot", "response": "slow", "status": "success"}`))
			return
		}
		_, _ = w.Write([]byte(`{"agent_name": "Bot", "response": "fast", "status": "success"}`))
	}))
	defer ts.Close()

	sink := &recordingSink{}
	s, err := NewSubmitter(ts.URL, sink)
	assert.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() { firstDone <- s.Submit(context.Background(), "slow") }()
	<-firstArrived

	// second invocation settles while the first is still in flight
	assert.NoError(t, s.Submit(context.Background(), "fast"))

	close(releaseFirst)
	assert.NoError(t, <-firstDone)

	// the stale first response must not overwrite the newer one
	assert.Len(t, sink.results, 1)
	assert.Equal(t, "fast", sink.results[0].Response)
}

func TestNewSubmitterValidation(t *testing.T) {
	_, err := NewSubmitter("", &recordingSink{})
	assert.Error(t, err)

	_, err = NewSubmitter(DefaultEndpoint, nil)
	assert.Error(t, err)
}

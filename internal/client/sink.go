package client

import (
	"fmt"
	"html"
	"io"
	"sync"
)

// Sink receives the outcome of a submission. Implementations render to a
// terminal, an HTML fragment, or anything else that can show a result.
type Sink interface {
	// Processing signals that a request is in flight.
	Processing()

	// Render shows a settled result.
	Render(res Result)

	// Failure shows the fixed transport/parse error message.
	Failure(message string)
}

// ConsoleSink writes plain text to an io.Writer.
type ConsoleSink struct {
	Out io.Writer
}

func (c *ConsoleSink) Processing() {
	fmt.Fprintln(c.Out, "Processing...")
}

func (c *ConsoleSink) Render(res Result) {
	fmt.Fprintf(c.Out, "Agent: %s\n\n%s\n", res.AgentName, res.Response)
}

func (c *ConsoleSink) Failure(message string) {
	fmt.Fprintln(c.Out, message)
}

// HTMLSink renders the result as an HTML fragment, holding only the output
// of the most recent event. Fields are escaped before interpolation.
type HTMLSink struct {
	mu      sync.Mutex
	content string
}

func (h *HTMLSink) Processing() {
	h.set("Processing...")
}

func (h *HTMLSink) Render(res Result) {
	h.set(fmt.Sprintf("<h3>Agent: %s</h3><p>%s</p>",
		html.EscapeString(res.AgentName), html.EscapeString(res.Response)))
}

func (h *HTMLSink) Failure(message string) {
	h.set(fmt.Sprintf("<p class=\"error\">%s</p>", html.EscapeString(message)))
}

// HTML returns the current fragment.
func (h *HTMLSink) HTML() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.content
}

func (h *HTMLSink) set(content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content = content
}

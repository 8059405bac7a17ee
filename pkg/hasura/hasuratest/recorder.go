// Package hasuratest provides a scripted hasura.Executor for tests.
package hasuratest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"duka/pkg/hasura"
)

// Call is one recorded Execute invocation
type Call struct {
	Query     string
	Variables map[string]interface{}
}

// Handler answers a single call
type Handler func(variables map[string]interface{}) (*hasura.Response, error)

// Recorder records every call and answers from handlers registered per
// query document. Unregistered documents get an empty data object.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	handlers map[string]Handler
}

// New creates an empty Recorder
func New() *Recorder {
	return &Recorder{handlers: make(map[string]Handler)}
}

// On registers the handler for query
func (r *Recorder) On(query string, h Handler) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[query] = h
	return r
}

// OnData answers query with data marshalled from v
func (r *Recorder) OnData(query string, v interface{}) *Recorder {
	return r.On(query, func(map[string]interface{}) (*hasura.Response, error) {
		return Data(v), nil
	})
}

// OnErrors answers query with a GraphQL errors list
func (r *Recorder) OnErrors(query string, messages ...string) *Recorder {
	return r.On(query, func(map[string]interface{}) (*hasura.Response, error) {
		return Errors(messages...), nil
	})
}

// Execute implements hasura.Executor
func (r *Recorder) Execute(_ context.Context, query string, variables map[string]interface{}) (*hasura.Response, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Query: query, Variables: variables})
	h, ok := r.handlers[query]
	r.mu.Unlock()

	if !ok {
		return &hasura.Response{Data: json.RawMessage(`{}`)}, nil
	}
	return h(variables)
}

// Calls returns a copy of all recorded calls in order
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsTo returns the recorded calls for query in order
func (r *Recorder) CallsTo(query string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Query == query {
			out = append(out, c)
		}
	}
	return out
}

// Data builds a successful response from v
func Data(v interface{}) *hasura.Response {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("hasuratest: marshal data: %v", err))
	}
	return &hasura.Response{Data: raw}
}

// Errors builds a failed response with one entry per message
func Errors(messages ...string) *hasura.Response {
	errs := make(hasura.Errors, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, map[string]interface{}{
			"message":    m,
			"extensions": map[string]interface{}{"code": "validation-failed"},
		})
	}
	return &hasura.Response{Errors: errs}
}

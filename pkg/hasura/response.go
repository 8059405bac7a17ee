package hasura

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned by Decode when the envelope carries no data
var ErrNoData = errors.New("graphql response has no data")

// Errors is the raw "errors" list of a GraphQL response. It is kept
// untyped so it can be handed back to the caller verbatim.
type Errors []map[string]interface{}

// Response is the {data, errors} envelope
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors Errors          `json:"errors,omitempty"`
}

// HasErrors reports whether the remote side rejected the operation
func (r *Response) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// Err returns a *RemoteError when the response carries errors, nil otherwise
func (r *Response) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &RemoteError{Errors: r.Errors}
}

// Decode unmarshals the data section into v
func (r *Response) Decode(v interface{}) error {
	if r == nil || len(r.Data) == 0 || string(r.Data) == "null" {
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode graphql data: %w", err)
	}
	return nil
}

// RemoteError wraps a non-empty errors list returned by Hasura
type RemoteError struct {
	Errors Errors
}

func (e *RemoteError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		if msg, ok := item["message"].(string); ok {
			messages = append(messages, msg)
		}
	}
	if len(messages) == 0 {
		return "graphql request failed"
	}
	return "graphql request failed: " + strings.Join(messages, "; ")
}

// Do runs query through ex and converts a non-empty errors list into
// *RemoteError, so a nil error means the operation succeeded.
func Do(ctx context.Context, ex Executor, query string, variables map[string]interface{}) (*Response, error) {
	resp, err := ex.Execute(ctx, query, variables)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return resp, err
	}
	return resp, nil
}

package hasura_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"duka/pkg/hasura"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientExecute_SendsQueryVariablesAndSecret(t *testing.T) {
	var got struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	var secret, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		secret = r.Header.Get("x-hasura-admin-secret")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"bus_by_pk":{"id":"b1"}}}`))
	}))
	defer srv.Close()

	client := hasura.NewClient(hasura.Config{Endpoint: srv.URL, AdminSecret: "s3cret"})
	resp, err := client.Execute(context.Background(), "query { x }", map[string]interface{}{"id": "b1"})
	require.NoError(t, err)

	assert.Equal(t, "s3cret", secret)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "query { x }", got.Query)
	assert.Equal(t, "b1", got.Variables["id"])
	assert.False(t, resp.HasErrors())

	var data struct {
		Bus struct {
			ID string `json:"id"`
		} `json:"bus_by_pk"`
	}
	require.NoError(t, resp.Decode(&data))
	assert.Equal(t, "b1", data.Bus.ID)
}

func TestClientExecute_ErrorsListIsNotTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"field not found","extensions":{"code":"validation-failed"}}]}`))
	}))
	defer srv.Close()

	client := hasura.NewClient(hasura.Config{Endpoint: srv.URL})
	resp, err := client.Execute(context.Background(), "mutation { y }", nil)
	require.NoError(t, err)
	require.True(t, resp.HasErrors())

	var remote *hasura.RemoteError
	require.True(t, errors.As(resp.Err(), &remote))
	assert.Equal(t, "field not found", remote.Errors[0]["message"])
	assert.Contains(t, remote.Error(), "field not found")
}

func TestClientExecute_NonJSONBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := hasura.NewClient(hasura.Config{Endpoint: srv.URL})
	_, err := client.Execute(context.Background(), "query { x }", nil)
	assert.ErrorIs(t, err, hasura.ErrTransport)
}

func TestClientExecute_UnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var observed error
	client := hasura.NewClient(hasura.Config{Endpoint: url, Timeout: time.Second}).
		OnCall(func(_ context.Context, _ string, _ time.Duration, err error) { observed = err })

	_, err := client.Execute(context.Background(), "query { x }", nil)
	assert.ErrorIs(t, err, hasura.ErrTransport)
	assert.ErrorIs(t, observed, hasura.ErrTransport)
}

func TestDo_ConvertsErrorsList(t *testing.T) {
	ex := executorFunc(func(ctx context.Context, q string, v map[string]interface{}) (*hasura.Response, error) {
		return &hasura.Response{Errors: hasura.Errors{{"message": "boom"}}}, nil
	})

	_, err := hasura.Do(context.Background(), ex, "q", nil)
	var remote *hasura.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Len(t, remote.Errors, 1)
}

func TestResponseDecode_NoData(t *testing.T) {
	var v map[string]interface{}
	assert.ErrorIs(t, (&hasura.Response{}).Decode(&v), hasura.ErrNoData)
	assert.ErrorIs(t, (&hasura.Response{Data: json.RawMessage("null")}).Decode(&v), hasura.ErrNoData)
}

type executorFunc func(ctx context.Context, q string, v map[string]interface{}) (*hasura.Response, error)

func (f executorFunc) Execute(ctx context.Context, q string, v map[string]interface{}) (*hasura.Response, error) {
	return f(ctx, q, v)
}

type ctxKey struct{}

func TestClientExecute_ObserverSeesCallerContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	var seen interface{}
	client := hasura.NewClient(hasura.Config{Endpoint: srv.URL}).
		OnCall(func(ctx context.Context, _ string, _ time.Duration, _ error) { seen = ctx.Value(ctxKey{}) })

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	_, err := client.Execute(ctx, "query { x }", nil)
	require.NoError(t, err)
	assert.Equal(t, "req-1", seen)
}

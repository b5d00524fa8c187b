package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", srv.Client(), zap.NewNop())
}

func TestDo_SetsRequestHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `[]`)
	}))

	_, err := client.ListCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	_, err = uuid.Parse(got.Get("X-Request-ID"))
	assert.NoError(t, err, "X-Request-ID should be a UUID")
}

func TestDo_PostSendsJSONBody(t *testing.T) {
	var contentType, body string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		fmt.Fprint(w, `{"id":9,"name":"Kamal"}`)
	}))

	created, err := client.CreateCustomer(context.Background(), &Customer{Name: "Kamal"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"name":"Kamal"}`, body)
	assert.EqualValues(t, 9, created.ID)
}

func TestDo_ValidationMessageIsShownVerbatim(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"Job name is required"}`)
	}))

	_, err := client.ListCustomers(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Job name is required", apiErr.UserMessage())
}

func TestDo_LegacyErrorKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":"amount out of range"}`)
	}))

	_, err := client.ListExpenses(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "amount out of range", apiErr.Message)
}

func TestDo_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListLoans(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, KindServer, apiErr.Kind)
	assert.Equal(t, "The server had a problem. Try again later.", apiErr.UserMessage())
}

func TestDo_AuthError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.ListLoans(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, KindAuth, apiErr.Kind)
	assert.Equal(t, "Your session has expired. Please log in again.", apiErr.UserMessage())
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := New(srv.URL+"/api", srv.Client(), zap.NewNop())
	srv.Close()

	_, err := client.ListCustomers(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Equal(t, "Could not reach the server. Check your connection.", apiErr.UserMessage())
}

func TestDo_MalformedSuccessBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{not json`)
	}))

	_, err := client.ListCustomers(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, KindProtocol, apiErr.Kind)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindAuth, classify(http.StatusUnauthorized))
	assert.Equal(t, KindAuth, classify(http.StatusForbidden))
	assert.Equal(t, KindValidation, classify(http.StatusBadRequest))
	assert.Equal(t, KindValidation, classify(http.StatusUnprocessableEntity))
	assert.Equal(t, KindServer, classify(http.StatusBadGateway))
	assert.Equal(t, KindUnexpected, classify(http.StatusNotFound))
}

func TestAsError_WrappedChain(t *testing.T) {
	inner := &Error{Op: "loans.get", Status: 404, Kind: KindUnexpected}
	wrapped := fmt.Errorf("load loan: %w", inner)

	apiErr, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "loans.get", apiErr.Op)

	_, ok = AsError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

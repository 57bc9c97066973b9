package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost", client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_SetsGeneratedRequestID(t *testing.T) {
	seen := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.R().Get("/")
	require.NoError(t, err)
	_, err = client.R().Get("/")
	require.NoError(t, err)

	first, second := <-seen, <-seen
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestHTTPClient_UsesRequestIDFromContext(t *testing.T) {
	seen := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get(RequestIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	ctx := WithRequestID(context.Background(), "pinned-id")
	_, err := client.R().SetContext(ctx).Get("/")
	require.NoError(t, err)

	assert.Equal(t, "pinned-id", <-seen)
}

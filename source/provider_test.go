package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_Defaults(t *testing.T) {
	provider := NewHTTPProvider("", 0)
	require.Equal(t, DefaultURL, provider.URL())

	provider = NewHTTPProvider("http://example.com/ucd.txt", time.Minute)
	require.Equal(t, "http://example.com/ucd.txt", provider.URL())
}

func TestHTTPProvider_Fetch(t *testing.T) {
	const body = "0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		_, _ = io.WriteString(w, body)
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, time.Second)

	rc, err := provider.Fetch(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}

func TestHTTPProvider_FetchNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, time.Second)

	_, err := provider.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestHTTPProvider_FetchCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

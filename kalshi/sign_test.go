package kalshi

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_Deterministic(t *testing.T) {
	a := signature("1700000000000", "GET", "/markets", "")
	b := signature("1700000000000", "GET", "/markets", "")

	assert.Equal(t, a, b)
}

func TestSignature_InputSensitivity(t *testing.T) {
	base := signature("1700000000000", "GET", "/markets", "")

	tests := []struct {
		name      string
		timestamp string
		method    string
		path      string
		body      string
	}{
		{
			name:      "different timestamp",
			timestamp: "1700000000001",
			method:    "GET",
			path:      "/markets",
			body:      "",
		},
		{
			name:      "different method",
			timestamp: "1700000000000",
			method:    "POST",
			path:      "/markets",
			body:      "",
		},
		{
			name:      "different path",
			timestamp: "1700000000000",
			method:    "GET",
			path:      "/events",
			body:      "",
		},
		{
			name:      "different body",
			timestamp: "1700000000000",
			method:    "GET",
			path:      "/markets",
			body:      `{"count":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signature(tt.timestamp, tt.method, tt.path, tt.body)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestSignature_IsBase64SHA256(t *testing.T) {
	sig := signature("1700000000000", "POST", "/portfolio/orders", `{"ticker":"TEST"}`)

	raw, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.Len(t, sig, 44)
}

func TestSetAuthHeaders(t *testing.T) {
	var gotKey, gotSig, gotTS, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("KALSHI-API-KEY")
		gotSig = r.Header.Get("KALSHI-API-SIGNATURE")
		gotTS = r.Header.Get("KALSHI-API-TIMESTAMP")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"balance":0}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "test-secret", zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	before := time.Now().UnixMilli()
	_, err = client.GetBalance(context.Background())
	after := time.Now().UnixMilli()
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)

	// Timestamp is epoch milliseconds captured at send time.
	ts, err := strconv.ParseInt(gotTS, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)

	// Signature is recomputable from the observed timestamp; the secret
	// never enters the digest.
	assert.Equal(t, signature(gotTS, "GET", "/portfolio/balance", ""), gotSig)
}

func TestSetAuthHeaders_QueryExcludedFromSignature(t *testing.T) {
	var gotSig, gotTS string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("KALSHI-API-SIGNATURE")
		gotTS = r.Header.Get("KALSHI-API-TIMESTAMP")
		w.Write([]byte(`{"markets":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "test-secret", zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListMarkets(context.Background(), MarketListOptions{Limit: 50, Status: "open"})
	require.NoError(t, err)

	// Only the bare path is signed, never the query string.
	assert.Equal(t, signature(gotTS, "GET", "/markets", ""), gotSig)
}

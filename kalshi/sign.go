package kalshi

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"
)

// Authentication header names expected by the Kalshi API.
const (
	headerAPIKey    = "KALSHI-API-KEY"
	headerSignature = "KALSHI-API-SIGNATURE"
	headerTimestamp = "KALSHI-API-TIMESTAMP"
)

// signature computes the request signature: the base64-encoded SHA-256
// digest of timestamp || method || path || body.
//
// timestamp is the decimal string of milliseconds since epoch, method the
// uppercase HTTP verb, path the request path without host or query string,
// and body the exact bytes sent on the wire (empty for bodyless requests).
// The body is marshalled once per request and reused for both the digest
// and the payload, so signature and transmission can never diverge.
//
// Note the API secret does not enter the digest; it is carried in
// configuration only. This mirrors the observed wire protocol.
func signature(timestamp, method, path, body string) string {
	sum := sha256.Sum256([]byte(timestamp + method + path + body))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// setAuthHeaders stamps a request with freshly computed authentication
// headers. The timestamp is captured here, immediately before signing;
// headers are never reused across calls.
func (c *Client) setAuthHeaders(req *http.Request, method, path string, body []byte) {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerSignature, signature(timestamp, method, path, string(body)))
	req.Header.Set(headerTimestamp, timestamp)
}

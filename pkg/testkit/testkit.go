// Package testkit holds shared helpers for HTTP handler tests.
package testkit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request builds an httptest request with an optional JSON body.
func Request(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// DecodeJSON unmarshals the recorded response body into dest, failing the
// test on malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest),
		"response is not valid JSON\nbody: %s", rec.Body.String())
}

// AssertJSONEq compares the recorded body against expected after
// normalising both through JSON unmarshal, so key order and whitespace
// never matter.
func AssertJSONEq(t *testing.T, expected string, rec *httptest.ResponseRecorder) {
	t.Helper()

	var expVal, actVal any
	require.NoError(t, json.Unmarshal([]byte(expected), &expVal),
		"expected value is not valid JSON")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actVal),
		"response is not valid JSON\nbody: %s", rec.Body.String())
	require.Equal(t, expVal, actVal, "response body mismatch")
}

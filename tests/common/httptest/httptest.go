//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const HeaderUserID = "X-Sharer-User-Id"

// executes HTTP request with an optional X-Sharer-User-Id header
func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/travel-guide/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Cleanup is registered via t.Cleanup so callers don't need to close it.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CountingServer is an upstream fake that numbers each request it receives.
type CountingServer struct {
	*httptest.Server
	calls atomic.Int32
}

// Calls returns how many requests the server has received.
func (s *CountingServer) Calls() int {
	return int(s.calls.Load())
}

// NewCountingServer starts a server that passes the 1-based call number to respond.
func NewCountingServer(t *testing.T, respond func(n int, w http.ResponseWriter, r *http.Request)) *CountingServer {
	t.Helper()
	s := &CountingServer{}
	s.Server = CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(int(s.calls.Add(1)), w, r)
	}))
	return s
}

// AssertErrorResponse checks that rec holds the JSON error envelope with the
// expected status and a message containing expectedErrorMsgPart.
func AssertErrorResponse(
	t *testing.T,
	rec *httptest.ResponseRecorder,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp),
		"Failed to unmarshal error response: %s", rec.Body.String())
	assert.Contains(t, errResp.Error, expectedErrorMsgPart)

	return errResp
}

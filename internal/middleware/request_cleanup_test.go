package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bodyTracker struct {
	io.Reader
	closed bool
}

func (b *bodyTracker) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndCloseRequest(t *testing.T) {
	body := &bodyTracker{Reader: strings.NewReader(`{"weight":60,"reps":8}`)}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = body

	handler := DrainAndCloseRequest(DefaultMaxBodyBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 4)
		_, err := r.Body.Read(buf)
		require.NoError(t, err)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, body.closed)
	rest, err := io.ReadAll(body.Reader)
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestDrainAndCloseRequest_BodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))

	var readErr error
	handler := DrainAndCloseRequest(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxBytesErr)
}

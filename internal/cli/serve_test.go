package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/search"
)

var roomLayout = []string{"*****", "*S  *", "*   *", "*  G*", "*****"}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newRouter(newLogger(&bytes.Buffer{}, log.DebugLevel)))
	t.Cleanup(srv.Close)

	return srv
}

func postSearch(t *testing.T, srv *httptest.Server, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	resp, err := http.Post(srv.URL+"/search", "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp, out.Bytes()
}

func TestServe_Healthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServe_Search(t *testing.T) {
	srv := newTestServer(t)
	resp, raw := postSearch(t, srv, searchRequest{Layout: roomLayout, Algorithm: "bfs", Render: true})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got searchResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	_, err := uuid.Parse(got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, resp.Header.Get("X-Run-ID"))

	assert.Equal(t, "bfs", got.Algorithm)
	assert.True(t, got.Found)
	assert.Equal(t, [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}}, got.Path)
	assert.Equal(t, 4, got.Cost)
	assert.Equal(t, 9, got.Visited)
	assert.Equal(t, 9, got.Added)
	assert.Equal(t, []string{"*****", "*S··*", "*  ·*", "*  G*", "*****"}, got.Rendered)
}

func TestServe_SearchDefaultsAndOverrides(t *testing.T) {
	srv := newTestServer(t)
	resp, raw := postSearch(t, srv, searchRequest{
		Layout:    roomLayout,
		Goal:      []int{1, 3},
		Obstacles: [][]int{{1, 2}},
		Motion:    "8",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var got searchResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "astar", got.Algorithm)
	assert.Equal(t, 2, got.Cost)
	assert.Equal(t, [2]int{2, 2}, got.Path[1])
	assert.Empty(t, got.Rendered)
}

func TestServe_NotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, raw := postSearch(t, srv, searchRequest{
		Layout:    []string{"*****", "*S  *", "*###*", "*  G*", "*****"},
		Algorithm: "dijkstra",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got searchResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.False(t, got.Found)
	assert.Empty(t, got.Path)
	assert.Equal(t, 3, got.Visited)
}

func TestServe_SearchErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		status int
		msg    string
	}{
		{"malformed json", `{"layout": [`, http.StatusBadRequest, "decode request"},
		{"unknown field", `{"layout": ["***"], "colour": 1}`, http.StatusBadRequest, "decode request"},
		{"no layout", searchRequest{Algorithm: "bfs"}, http.StatusBadRequest, "layout is required"},
		{"unknown algorithm", searchRequest{Layout: roomLayout, Algorithm: "ida"}, http.StatusBadRequest, "unknown algorithm"},
		{"broken layout", searchRequest{Layout: []string{"* *"}}, http.StatusBadRequest, "boundary"},
		{"no goal", searchRequest{Layout: []string{"***", "*S*", "***"}}, http.StatusBadRequest, "goal is not set"},
		{"negative limit", searchRequest{Layout: roomLayout, MaxVisits: -1}, http.StatusBadRequest, "invalid option"},
		{"visit limit", searchRequest{Layout: roomLayout, Algorithm: "bfs", MaxVisits: 2}, http.StatusUnprocessableEntity, "visit limit"},
	}
	srv := newTestServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := postSearch(t, srv, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode, string(raw))

			var got errorResponse
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Contains(t, got.Error, tc.msg)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestServe_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/search")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(context.Canceled))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, statusFor(search.ErrStartInvalid))
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, newLogger(&logs, log.InfoLevel)) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, strings.Contains(logs.String(), "server stopped"))
}

package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/notify"
	"github.com/umputun/qotd/server/mocks"
)

// testDeps holds mocks with permissive defaults, tests override what they check
type testDeps struct {
	docs     *mocks.DocumentStoreMock
	resolver *mocks.ResolverMock
	settings *mocks.SettingsMock
	notices  *mocks.NoticesMock
	history  *mocks.HistoryMock
}

func newTestDeps() *testDeps {
	return &testDeps{
		docs: &mocks.DocumentStoreMock{},
		resolver: &mocks.ResolverMock{
			EditFunc: func(ctx context.Context, id string, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
		},
		settings: &mocks.SettingsMock{
			FormatFunc:          domain.DefaultFormat,
			PlaceholdersFunc:    domain.DefaultPlaceholders,
			FilterValuesFunc:    func() []string { return []string{"Life"} },
			DescribeFiltersFunc: func(sep string) string { return "Life" },
		},
		notices: &mocks.NoticesMock{RecentFunc: func(limit int) []notify.Notice { return nil }},
		history: &mocks.HistoryMock{},
	}
}

func (d *testDeps) server() *Server {
	return New(Params{
		Listen:    ":0",
		BaseURL:   "http://example.com",
		RSSLimit:  10,
		Documents: d.docs,
		Resolver:  d.resolver,
		Settings:  d.settings,
		Notices:   d.notices,
		History:   d.history,
	}, "test", false)
}

// do performs request against the server router
func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_New(t *testing.T) {
	srv := New(Params{}, "1.0.0", true)
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
	assert.Equal(t, 50, srv.RSSLimit)
	assert.Equal(t, 30*time.Second, srv.Timeout)
}

func TestServer_Middleware(t *testing.T) {
	srv := newTestDeps().server()

	w := do(t, srv, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = do(t, srv, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "qotd", w.Header().Get("App-Name"))
	assert.Equal(t, "test", w.Header().Get("App-Version"))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"filter":"Life"`)
	assert.Contains(t, w.Body.String(), `"random":"{{qotd}}"`)
}

func TestServer_Metrics(t *testing.T) {
	w := do(t, newTestDeps().server(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	deps := newTestDeps()
	srv := New(Params{
		Listen:    fmt.Sprintf("127.0.0.1:%d", port),
		Timeout:   5 * time.Second,
		Documents: deps.docs,
		Resolver:  deps.resolver,
		Settings:  deps.settings,
		Notices:   deps.notices,
		History:   deps.history,
	}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

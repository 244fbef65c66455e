package nasa

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhGeri/NASA-MCP/internal/logging"
)

// upstream is an httptest stand-in for the NASA API that counts requests per
// path.
type upstream struct {
	server *httptest.Server

	mu      sync.Mutex
	hits    map[string]int
	queries []url.Values
}

func newUpstream(t *testing.T, routes map[string]http.HandlerFunc) *upstream {
	t.Helper()
	u := &upstream{hits: map[string]int{}}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.hits[r.URL.Path]++
		u.queries = append(u.queries, r.URL.Query())
		u.mu.Unlock()

		if h, ok := routes[r.URL.Path]; ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) URL() string { return u.server.URL }

func (u *upstream) Hits(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[path]
}

func (u *upstream) Total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	total := 0
	for _, n := range u.hits {
		total += n
	}
	return total
}

func (u *upstream) LastQuery() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.queries) == 0 {
		return nil
	}
	return u.queries[len(u.queries)-1]
}

func (u *upstream) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL: u.URL(),
		Timeout: 2 * time.Second,
		Logger:  logging.Discard(),
	})
	require.NoError(t, err)
	return c
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(code), code)
	}
}

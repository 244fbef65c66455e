package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/nhGeri/NASA-MCP/internal/logging"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

type testServer struct {
	srv      *Server
	upstream *httptest.Server
	registry *prometheus.Registry
	hits     atomic.Int64
	nextID   int
}

func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) *testServer {
	t.Helper()
	ts := &testServer{registry: prometheus.NewRegistry()}

	ts.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.hits.Add(1)
		if h, ok := routes[r.URL.Path]; ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(ts.upstream.Close)

	client, err := nasa.NewClient(nasa.Config{
		BaseURL: ts.upstream.URL,
		Metrics: nasa.NewMetrics(ts.registry),
		Logger:  logging.Discard(),
	})
	require.NoError(t, err)

	ts.srv, err = New(Config{
		ToolAdapters: Adapters(client, "https://images.nasa.gov"),
		Registry:     ts.registry,
		Logger:       logging.Discard(),
	})
	require.NoError(t, err)

	ts.send(t, "initialize", map[string]any{
		"protocolVersion": "2025-03-26",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0.0.1"},
	})
	return ts
}

func (ts *testServer) send(t *testing.T, method string, params any) gjson.Result {
	t.Helper()
	ts.nextID++
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      ts.nextID,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := ts.srv.MCP.HandleMessage(context.Background(), msg)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	return gjson.ParseBytes(raw)
}

// call runs a tool and returns the isError flag and the decoded JSON body.
func (ts *testServer) call(t *testing.T, name string, args map[string]any) (bool, gjson.Result) {
	t.Helper()
	resp := ts.send(t, "tools/call", map[string]any{"name": name, "arguments": args})
	require.False(t, resp.Get("error").Exists(), "protocol error: %s", resp.Raw)

	text := resp.Get("result.content.0.text").String()
	require.True(t, gjson.Valid(text), "tool returned non-JSON text: %q", text)
	return resp.Get("result.isError").Bool(), gjson.Parse(text)
}

func writeJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	}
}

func TestListTools(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := ts.send(t, "tools/list", map[string]any{})
	var names []string
	for _, n := range resp.Get("result.tools.#.name").Array() {
		names = append(names, n.String())
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		ToolApollo11Resources,
		ToolCaptions,
		ToolFamousImages,
		ToolImageDetails,
		ToolMetadata,
		ToolVideoDetails,
		ToolApollo11Search,
		ToolSearch,
	}, names)

	famous := resp.Get(`result.tools.#(name=="get_famous_nasa_images")`)
	assert.Contains(t, famous.Get("description").String(), "Static catalog, no live data")
	assert.True(t, famous.Get("annotations.readOnlyHint").Bool())

	search := resp.Get(`result.tools.#(name=="search_nasa_images")`)
	assert.Equal(t, []any{"query"}, search.Get("inputSchema.required").Value())
	assert.Zero(t, ts.hits.Load())
}

func TestSearchScenario(t *testing.T) {
	items := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, fmt.Sprintf(`{"data":[{"title":"Apollo %d","nasa_id":"as11-%d","media_type":"image","date_created":"1969-07-20T00:00:00Z"}],"links":[{"href":"https://images-assets.nasa.gov/image/as11-%d/as11-%d~thumb.jpg"}]}`, i, i, i, i))
	}
	var query string
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/search": func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			writeJSON(`{"collection":{"metadata":{"total_hits":1500},"items":[` + strings.Join(items, ",") + `]}}`)(w, r)
		},
	})

	isError, body := ts.call(t, ToolSearch, map[string]any{"query": "apollo 11", "page_size": 5})
	require.False(t, isError, body.Raw)

	assert.Contains(t, query, "page_size=5")
	assert.EqualValues(t, 1500, body.Get("total_hits").Int())
	assert.EqualValues(t, 5, body.Get("returned_results").Int())
	assert.Len(t, body.Get("results").Array(), 5)
	assert.Equal(t, "as11-0", body.Get("results.0.nasa_id").String())
}

func TestSearchClampsHugePageSize(t *testing.T) {
	var query string
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/search": func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query().Get("page_size")
			writeJSON(`{"collection":{"metadata":{"total_hits":0},"items":[]}}`)(w, r)
		},
	})

	isError, body := ts.call(t, ToolSearch, map[string]any{"query": "mars", "page_size": 1e19})
	require.False(t, isError, body.Raw)
	assert.Equal(t, "100", query)
}

func TestImageDetailsScenario(t *testing.T) {
	base := "https://images-assets.nasa.gov/image/as11-40-5903/"
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/asset/as11-40-5903": writeJSON(`{"collection":{"items":[
			{"href":"` + base + `as11-40-5903~orig.jpg"},
			{"href":"` + base + `as11-40-5903~large.jpg"},
			{"href":"` + base + `as11-40-5903~thumb.jpg"},
			{"href":"` + base + `metadata.json"}
		]}}`),
	})

	isError, body := ts.call(t, ToolImageDetails, map[string]any{"nasa_id": "as11-40-5903"})
	require.False(t, isError, body.Raw)

	var kinds []string
	for _, k := range body.Get("files.#.type").Array() {
		kinds = append(kinds, k.String())
	}
	assert.Equal(t, []string{"Original", "Large", "Thumbnail", "Metadata"}, kinds)
	assert.EqualValues(t, 4, body.Get("total_files").Int())
}

func TestCaptionsNotFoundScenario(t *testing.T) {
	ts := newTestServer(t, nil)

	isError, body := ts.call(t, ToolCaptions, map[string]any{"nasa_id": "as11-40-5903"})
	assert.True(t, isError)
	assert.Equal(t, string(nasa.KindNotFound), body.Get("kind").String())
	assert.Equal(t, "as11-40-5903", body.Get("nasa_id").String())
	assert.False(t, body.Get("retryable").Bool())
	assert.EqualValues(t, 1, ts.hits.Load())
}

func TestInvalidInputMakesNoRequests(t *testing.T) {
	ts := newTestServer(t, nil)

	isError, body := ts.call(t, ToolSearch, map[string]any{"query": "mars", "media_type": "hologram"})
	assert.True(t, isError)
	assert.Equal(t, string(nasa.KindInvalidInput), body.Get("kind").String())
	assert.Zero(t, ts.hits.Load())
}

func TestFamousImagesOffline(t *testing.T) {
	ts := newTestServer(t, nil)

	isError, body := ts.call(t, ToolFamousImages, map[string]any{})
	require.False(t, isError)
	assert.True(t, body.Get("static").Bool())
	assert.Len(t, body.Get("images").Array(), 5)
	assert.Zero(t, ts.hits.Load())
}

func TestHTTPHandlerRoutes(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/search": writeJSON(`{"collection":{"metadata":{"total_hits":0},"items":[]}}`),
	})
	ts.call(t, ToolSearch, map[string]any{"query": "nothing"})

	rec := httptest.NewRecorder()
	ts.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	ts.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nasa_upstream_requests_total{endpoint="search",outcome="ok"} 1`)
}

func TestNewRejectsUnknownTool(t *testing.T) {
	_, err := New(Config{
		ToolAdapters: map[string]ToolAdapter{"launch_rocket": nil},
		Logger:       logging.Discard(),
	})
	assert.ErrorContains(t, err, "launch_rocket")
}

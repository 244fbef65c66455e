package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nhGeri/NASA-MCP/internal/catalog"
	"github.com/nhGeri/NASA-MCP/internal/config"
	"github.com/nhGeri/NASA-MCP/internal/logging"
	"github.com/nhGeri/NASA-MCP/internal/mcp/tools"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	EndpointPath string
	// Registry is served on /metrics when set.
	Registry *prometheus.Registry
	Logger   logging.Logger
}

// DefaultConfig builds the NASA client and tool registry from viper settings.
func DefaultConfig() (Config, error) {
	log := logging.New(logging.NewLogger(config.LogLevel()))

	timeout, err := config.HTTPTimeout()
	if err != nil {
		return Config{}, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, err := nasa.NewClient(nasa.Config{
		BaseURL:      config.APIURL(),
		Timeout:      timeout,
		RateLimit:    config.RateLimit(),
		PreviewChars: config.CaptionsPreviewSize(),
		Metrics:      nasa.NewMetrics(registry),
		Logger:       log,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to create nasa client: %w", err)
	}

	endpoint := config.EndpointPath()
	return Config{
		ToolAdapters: Adapters(client, config.SiteURL()),
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(endpoint),
			server.WithStateLess(true),
		},
		EndpointPath: endpoint,
		Registry:     registry,
		Logger:       log,
	}, nil
}

// Adapters maps every tool name to its handler. The map is built once and
// not modified afterwards.
func Adapters(client *nasa.Client, siteURL string) map[string]ToolAdapter {
	return map[string]ToolAdapter{
		ToolSearch:            &tools.SearchHandler{Service: client},
		ToolImageDetails:      &tools.AssetFilesHandler{Service: client},
		ToolMetadata:          &tools.MetadataHandler{Service: client},
		ToolCaptions:          &tools.CaptionsHandler{Service: client},
		ToolFamousImages:      &tools.FamousImagesHandler{Catalog: catalog.Famous},
		ToolApollo11Search:    &tools.Apollo11SearchHandler{Service: client},
		ToolApollo11Resources: &tools.Apollo11ResourcesHandler{Service: client},
		ToolVideoDetails:      &tools.VideoDetailsHandler{Service: client, SiteURL: siteURL},
	}
}

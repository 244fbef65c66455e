package mcp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tidwall/gjson"

	"github.com/nhGeri/NASA-MCP/internal/logging"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

const (
	serverName    = "nasa-images-server"
	serverVersion = "1.0.0"

	defaultEndpointPath = "/mcp"
)

// Tool names.
const (
	ToolSearch            = "search_nasa_images"
	ToolImageDetails      = "get_image_details"
	ToolMetadata          = "get_metadata"
	ToolCaptions          = "get_captions"
	ToolFamousImages      = "get_famous_nasa_images"
	ToolApollo11Search    = "search_apollo11_specific"
	ToolApollo11Resources = "get_apollo11_resources"
	ToolVideoDetails      = "get_video_details"
)

const instructions = `Tools for the NASA Images and Video Library.

Start with search_nasa_images to find nasa_id values. Then:
- get_image_details lists the downloadable files of an item (Original, Large, Medium, Small, Thumbnail, Captions, Metadata).
- get_metadata returns the technical metadata document (EXIF, camera, keywords).
- get_video_details returns metadata and the public page of a video.
- get_captions returns the SRT captions of a video. Images never have captions.

get_famous_nasa_images is a static list and needs no search. Failed calls return a JSON body with "kind" and "retryable"; only retry when retryable is true.`

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	log     logging.Logger
}

func New(cfg Config) (*Server, error) {
	log := logging.New(cfg.Logger.Logr()).WithName("mcp")

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)

	definitions := toolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			return nil, fmt.Errorf("no definition for tool %q", name)
		}
		mcpServer.AddTool(tool, instrument(log, name, adapter))
	}

	endpoint := cfg.EndpointPath
	if endpoint == "" {
		endpoint = defaultEndpointPath
	}
	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	mux := http.NewServeMux()
	mux.Handle(endpoint, httpServer)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	if cfg.Registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: mux,
		log:     log,
	}, nil
}

// ServeStdio speaks MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("serving MCP over stdio")
	return server.NewStdioServer(s.MCP).Listen(ctx, in, out)
}

// instrument logs every call with its own id. Tool failures arrive as error
// results, so their kind is read back from the JSON body.
func instrument(log logging.Logger, name string, adapter ToolAdapter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callLog := log.WithValues("tool", name, "call_id", uuid.NewString())
		callLog.Debug("tool call started", "arguments", req.GetArguments())

		start := time.Now()
		result, err := adapter.ToolAdapter(ctx, req)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			callLog.Error(err, "tool call failed", "elapsed", elapsed)
		case result != nil && result.IsError:
			body := errorBody(result)
			callLog.Info("tool call returned an error", "elapsed", elapsed,
				"kind", body.Get("kind").String(), "retryable", body.Get("retryable").Bool())
		default:
			callLog.Info("tool call completed", "elapsed", elapsed)
		}
		return result, err
	}
}

func errorBody(result *mcp.CallToolResult) gjson.Result {
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return gjson.Parse(text.Text)
		}
	}
	return gjson.Result{}
}

func readOnly(title string, openWorld bool) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(openWorld),
	}
}

func nasaIDParam(description string) mcp.ToolOption {
	return mcp.WithString("nasa_id",
		mcp.Required(),
		mcp.Description(description),
	)
}

func toolDefinitions() map[string]mcp.Tool {
	newTool := func(name, title string, openWorld bool, opts ...mcp.ToolOption) mcp.Tool {
		return mcp.NewTool(name, append(readOnly(title, openWorld), opts...)...)
	}

	return map[string]mcp.Tool{
		ToolSearch: newTool(ToolSearch, "Search NASA images", true,
			mcp.WithDescription("Search the NASA Images and Video Library. Returns titles, nasa_id values, descriptions, dates and thumbnail links. Use get_image_details with a nasa_id to get download links, and get_metadata for technical details."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search terms (e.g., 'apollo 11', 'mars rover', 'hubble nebula')"),
			),
			mcp.WithString("media_type",
				mcp.Description("Optional: restrict results to one media type"),
				mcp.Enum("image", "video", "audio"),
			),
			mcp.WithString("year_start",
				mcp.Description("Optional: earliest year of creation (e.g., '1969')"),
			),
			mcp.WithString("year_end",
				mcp.Description("Optional: latest year of creation (e.g., '1972')"),
			),
			mcp.WithNumber("page_size",
				mcp.Description("Number of results to return (default: 10, maximum: 100)"),
				mcp.DefaultNumber(nasa.DefaultPageSize),
			),
			mcp.WithNumber("page",
				mcp.Description("Optional: result page, starting at 1"),
			),
		),
		ToolImageDetails: newTool(ToolImageDetails, "List image files", true,
			mcp.WithDescription("List every file NASA publishes for an item, with its quality tier (Original, Large, Medium, Small, Thumbnail) or role (Captions, Metadata, Other) and direct URL. Use this to find high resolution download links."),
			nasaIDParam("The nasa_id of the item (e.g., 'as11-40-5903')"),
		),
		ToolMetadata: newTool(ToolMetadata, "Get item metadata", true,
			mcp.WithDescription("Fetch the technical metadata document of an item: EXIF and camera data, keywords, dimensions and descriptions. Returns available=false when NASA has no metadata for the item."),
			nasaIDParam("The nasa_id of the item"),
		),
		ToolCaptions: newTool(ToolCaptions, "Get video captions", true,
			mcp.WithDescription("Fetch the SRT captions of a video, with a short preview and a token estimate of the full text. Only videos have captions; an image id returns a not_found error."),
			nasaIDParam("The nasa_id of a video"),
		),
		ToolFamousImages: newTool(ToolFamousImages, "Famous NASA images", false,
			mcp.WithDescription("List a curated set of iconic NASA images (Earthrise, Buzz Aldrin on the Moon, Blue Marble, Pillars of Creation, Pale Blue Dot) with their nasa_id values. Static catalog, no live data."),
		),
		ToolApollo11Search: newTool(ToolApollo11Search, "Search Apollo 11 images", true,
			mcp.WithDescription("Search Apollo 11 mission images (1969-1972). Keywords are added to 'apollo 11'."),
			mcp.WithString("query",
				mcp.Description("Optional: extra keywords (e.g., 'armstrong', 'lunar module')"),
			),
			mcp.WithNumber("page_size",
				mcp.Description("Number of results to return (default: 10, maximum: 100)"),
				mcp.DefaultNumber(nasa.DefaultPageSize),
			),
		),
		ToolApollo11Resources: newTool(ToolApollo11Resources, "Apollo 11 resources", true,
			mcp.WithDescription("Overview of Apollo 11 images, videos and audio in the library, with the total number of matching items."),
			mcp.WithNumber("page_size",
				mcp.Description("Number of results to return (default: 10, maximum: 50)"),
				mcp.DefaultNumber(nasa.DefaultPageSize),
			),
		),
		ToolVideoDetails: newTool(ToolVideoDetails, "Get video details", true,
			mcp.WithDescription("Fetch the metadata document of a video and a link to its page on images.nasa.gov. Use get_captions for the transcript."),
			nasaIDParam("The nasa_id of a video"),
		),
	}
}

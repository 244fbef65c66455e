package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhGeri/NASA-MCP/internal/mcp/tools/types"
)

type MetadataService interface {
	Metadata(ctx context.Context, nasaID string) (types.MetadataResponse, error)
}

// MetadataHandler serves get_metadata.
type MetadataHandler struct {
	Service MetadataService
}

func (h *MetadataHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArgument(req.GetArguments(), "nasa_id")
	if id == "" {
		return inputError("metadata", "nasa_id is required"), nil
	}
	resp, err := h.Service.Metadata(ctx, id)
	if err != nil {
		return errorResult(err, id), nil
	}
	return jsonResult(resp), nil
}

// VideoDetailsHandler serves get_video_details. Videos have no per-size
// renditions worth listing, so it returns the metadata document plus a link
// to the public details page.
type VideoDetailsHandler struct {
	Service MetadataService
	SiteURL string
}

func (h *VideoDetailsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArgument(req.GetArguments(), "nasa_id")
	if id == "" {
		return inputError("metadata", "nasa_id is required"), nil
	}
	resp, err := h.Service.Metadata(ctx, id)
	if err != nil {
		return errorResult(err, id), nil
	}
	return jsonResult(types.VideoDetailsResponse{
		MetadataResponse: resp,
		MediaType:        "video",
		DetailsURL:       h.SiteURL + "/details/" + url.PathEscape(id),
	}), nil
}

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhGeri/NASA-MCP/internal/mcp/tools/types"
)

type AssetService interface {
	AssetFiles(ctx context.Context, nasaID string) (types.AssetFilesResponse, error)
}

// AssetFilesHandler serves get_image_details.
type AssetFilesHandler struct {
	Service AssetService
}

func (h *AssetFilesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArgument(req.GetArguments(), "nasa_id")
	if id == "" {
		return inputError("assets", "nasa_id is required"), nil
	}
	resp, err := h.Service.AssetFiles(ctx, id)
	if err != nil {
		return errorResult(err, id), nil
	}
	return jsonResult(resp), nil
}

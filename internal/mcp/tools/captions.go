package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhGeri/NASA-MCP/internal/mcp/tools/types"
)

type CaptionsService interface {
	Captions(ctx context.Context, nasaID string) (types.CaptionsResponse, error)
}

// CaptionsHandler serves get_captions.
type CaptionsHandler struct {
	Service CaptionsService
}

func (h *CaptionsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArgument(req.GetArguments(), "nasa_id")
	if id == "" {
		return inputError("captions", "nasa_id is required"), nil
	}
	resp, err := h.Service.Captions(ctx, id)
	if err != nil {
		return errorResult(err, id), nil
	}
	return jsonResult(resp), nil
}

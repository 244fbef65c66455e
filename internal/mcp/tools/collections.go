package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhGeri/NASA-MCP/internal/mcp/tools/types"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

// CatalogFunc returns the static curated catalog.
type CatalogFunc func() (types.CuratedCollection, error)

// FamousImagesHandler serves get_famous_nasa_images without touching the
// network.
type FamousImagesHandler struct {
	Catalog CatalogFunc
}

func (h *FamousImagesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection, err := h.Catalog()
	if err != nil {
		return errorResult(&nasa.Error{Kind: nasa.KindMalformed, Op: "catalog", Err: err}, ""), nil
	}
	return jsonResult(collection), nil
}

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhGeri/NASA-MCP/internal/mcp/tools/types"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

type SearchService interface {
	Search(ctx context.Context, params nasa.SearchParams) (types.SearchResponse, error)
}

// SearchHandler serves search_nasa_images.
type SearchHandler struct {
	Service SearchService
}

func (h *SearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArgument(args, "query")
	if query == "" {
		return inputError("search", "query parameter is required"), nil
	}
	pageSize, err := intArgument(args, "page_size")
	if err != nil {
		return inputError("search", "%v", err), nil
	}
	page, err := intArgument(args, "page")
	if err != nil {
		return inputError("search", "%v", err), nil
	}

	resp, err := h.Service.Search(ctx, nasa.SearchParams{
		Query:     query,
		MediaType: stringArgument(args, "media_type"),
		YearStart: stringArgument(args, "year_start"),
		YearEnd:   stringArgument(args, "year_end"),
		PageSize:  pageSize,
		Page:      page,
	})
	if err != nil {
		return errorResult(err, ""), nil
	}
	return jsonResult(resp), nil
}

// Apollo11SearchHandler serves search_apollo11_specific.
type Apollo11SearchHandler struct {
	Service SearchService
}

func (h *Apollo11SearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	pageSize, err := intArgument(args, "page_size")
	if err != nil {
		return inputError("search", "%v", err), nil
	}
	resp, err := h.Service.Search(ctx, nasa.Apollo11ImageSearch(stringArgument(args, "query"), pageSize))
	if err != nil {
		return errorResult(err, ""), nil
	}
	return jsonResult(resp), nil
}

// Apollo11ResourcesHandler serves get_apollo11_resources.
type Apollo11ResourcesHandler struct {
	Service SearchService
}

func (h *Apollo11ResourcesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := intArgument(req.GetArguments(), "page_size")
	if err != nil {
		return inputError("search", "%v", err), nil
	}
	resp, err := h.Service.Search(ctx, nasa.Apollo11Resources(pageSize))
	if err != nil {
		return errorResult(err, ""), nil
	}
	return jsonResult(types.Apollo11Resources{
		TotalInDatabase: resp.TotalHits,
		Returned:        resp.ReturnedResults,
		Results:         resp.Results,
	}), nil
}

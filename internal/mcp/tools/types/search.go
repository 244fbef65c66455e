package types

import "github.com/nhGeri/NASA-MCP/internal/nasa"

type (
	SearchResult   = nasa.SearchResult
	SearchResponse = nasa.SearchResponse
)

// Apollo11Resources reports the whole Apollo 11 holding next to one page of
// it.
type Apollo11Resources struct {
	TotalInDatabase int64          `json:"total_in_database"`
	Returned        int            `json:"returned"`
	Results         []SearchResult `json:"results"`
}

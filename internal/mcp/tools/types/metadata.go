package types

import "github.com/nhGeri/NASA-MCP/internal/nasa"

type MetadataResponse = nasa.MetadataResponse

type VideoDetailsResponse struct {
	MetadataResponse
	MediaType  string `json:"media_type"`
	DetailsURL string `json:"nasa_website"`
}

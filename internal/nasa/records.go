package nasa

import "encoding/json"

// SearchResult is one normalized item of a NASA library search.
type SearchResult struct {
	Title        string  `json:"title"`
	NASAID       string  `json:"nasa_id"`
	Description  string  `json:"description"`
	DateCreated  string  `json:"date_created"`
	MediaType    string  `json:"media_type"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

type SearchResponse struct {
	Query           string         `json:"query"`
	TotalHits       int64          `json:"total_hits"`
	ReturnedResults int            `json:"returned_results"`
	Results         []SearchResult `json:"results"`
}

// FileType is the coarse quality or role tier of an asset file.
type FileType string

const (
	FileTypeOriginal  FileType = "Original"
	FileTypeLarge     FileType = "Large"
	FileTypeMedium    FileType = "Medium"
	FileTypeSmall     FileType = "Small"
	FileTypeThumbnail FileType = "Thumbnail"
	FileTypeMetadata  FileType = "Metadata"
	FileTypeCaptions  FileType = "Captions"
	FileTypeOther     FileType = "Other"
)

type AssetFile struct {
	Type     FileType `json:"type"`
	Filename string   `json:"filename"`
	URL      string   `json:"url"`
}

type AssetFilesResponse struct {
	NASAID     string      `json:"nasa_id"`
	TotalFiles int         `json:"total_files"`
	Files      []AssetFile `json:"files"`
}

// MetadataResponse carries the technical metadata document of an item. When
// the upstream exposes no metadata location Available is false and both
// MetadataURL and Metadata are empty.
type MetadataResponse struct {
	NASAID      string          `json:"nasa_id"`
	Available   bool            `json:"available"`
	MetadataURL string          `json:"metadata_url,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Message     string          `json:"message,omitempty"`
}

type CaptionsResponse struct {
	NASAID         string `json:"nasa_id"`
	Available      bool   `json:"available"`
	Format         string `json:"format,omitempty"`
	CaptionURL     string `json:"caption_url,omitempty"`
	Content        string `json:"content,omitempty"`
	ContentPreview string `json:"content_preview,omitempty"`
	TokenEstimate  int    `json:"token_estimate,omitempty"`
	Message        string `json:"message,omitempty"`
}

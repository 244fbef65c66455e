package types

// ErrorResult is the JSON body of a failed tool call. Content-stage failures
// name the document that could not be fetched in CaptionURL or MetadataURL.
type ErrorResult struct {
	Error       string `json:"error"`
	Kind        string `json:"kind"`
	Retryable   bool   `json:"retryable"`
	StatusCode  int    `json:"status_code,omitempty"`
	Stage       string `json:"stage,omitempty"`
	NASAID      string `json:"nasa_id,omitempty"`
	CaptionURL  string `json:"caption_url,omitempty"`
	MetadataURL string `json:"metadata_url,omitempty"`
}

package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const captionsFormat = "SRT"

// resolveLocation reads the "location" pointer returned by the metadata and
// captions endpoints. An empty string means the item has no such resource.
func (c *Client) resolveLocation(ctx context.Context, endpoint, nasaID string) (string, error) {
	body, err := c.get(ctx, endpoint, c.endpointURL(endpoint, nasaID))
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(body) {
		return "", malformed("%s response is not valid JSON", endpoint)
	}
	return strings.TrimSpace(gjson.GetBytes(body, "location").String()), nil
}

// Metadata follows the metadata pointer of an item and returns the document
// it references verbatim. The second request is only made when the pointer
// exists.
func (c *Client) Metadata(ctx context.Context, nasaID string) (MetadataResponse, error) {
	const op = "metadata"
	id, err := requireID(op, nasaID)
	if err != nil {
		return MetadataResponse{}, err
	}

	location, err := c.resolveLocation(ctx, endpointMetadata, id)
	if err != nil {
		return MetadataResponse{}, annotate(err, op, StagePointer)
	}
	if location == "" {
		return MetadataResponse{
			NASAID:    id,
			Available: false,
			Message:   fmt.Sprintf("no metadata available for %s", id),
		}, nil
	}

	body, err := c.get(ctx, endpointMetadataFile, location)
	if err != nil {
		return MetadataResponse{}, contentError(err, op)
	}
	if !json.Valid(body) {
		e := malformed("metadata document is not valid JSON")
		e.URL = location
		return MetadataResponse{}, annotate(e, op, StageContent)
	}

	return MetadataResponse{
		NASAID:      id,
		Available:   true,
		MetadataURL: location,
		Metadata:    json.RawMessage(body),
	}, nil
}

// Captions follows the captions pointer of a video and downloads the
// subtitle file. Items without captions answer 404 on the pointer request,
// which is reported as not_found; a failed download of an existing pointer is
// reported as a content-stage unavailable or timeout error instead.
func (c *Client) Captions(ctx context.Context, nasaID string) (CaptionsResponse, error) {
	const op = "captions"
	id, err := requireID(op, nasaID)
	if err != nil {
		return CaptionsResponse{}, err
	}

	location, err := c.resolveLocation(ctx, endpointCaptions, id)
	if err != nil {
		return CaptionsResponse{}, annotate(err, op, StagePointer)
	}
	if location == "" {
		return CaptionsResponse{
			NASAID:    id,
			Available: false,
			Message:   fmt.Sprintf("no captions found for %s", id),
		}, nil
	}

	body, err := c.get(ctx, endpointCaptionFile, location)
	if err != nil {
		return CaptionsResponse{}, contentError(err, op)
	}

	content := string(body)
	return CaptionsResponse{
		NASAID:         id,
		Available:      true,
		Format:         captionsFormat,
		CaptionURL:     location,
		Content:        content,
		ContentPreview: preview(content, c.previewChars),
		TokenEstimate:  estimateTokens(content),
	}, nil
}

// preview returns at most n runes of s.
func preview(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

package nasa

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	MaxPageSize     = 100
	DefaultPageSize = 10

	defaultTitle     = "Untitled"
	defaultMediaType = "image"
)

var mediaTypes = map[string]bool{"image": true, "video": true, "audio": true}

type SearchParams struct {
	Query     string
	MediaType string
	// YearStart and YearEnd are forwarded verbatim when set.
	YearStart string
	YearEnd   string
	PageSize  int
	Page      int
}

// ClampPageSize applies the default to non-positive sizes and caps the rest
// at limit.
func ClampPageSize(size, limit int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return min(size, limit)
}

func (p SearchParams) normalize() (SearchParams, error) {
	p.Query = strings.TrimSpace(p.Query)
	if p.Query == "" {
		return p, invalidInput("search", "query is required")
	}
	p.MediaType = strings.ToLower(strings.TrimSpace(p.MediaType))
	if p.MediaType != "" && !mediaTypes[p.MediaType] {
		return p, invalidInput("search", "media_type must be one of image, video, audio; got %q", p.MediaType)
	}
	if p.Page < 0 {
		return p, invalidInput("search", "page must be positive")
	}
	p.PageSize = ClampPageSize(p.PageSize, MaxPageSize)
	return p, nil
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	v.Set("q", p.Query)
	if p.MediaType != "" {
		v.Set("media_type", p.MediaType)
	}
	if p.YearStart != "" {
		v.Set("year_start", p.YearStart)
	}
	if p.YearEnd != "" {
		v.Set("year_end", p.YearEnd)
	}
	v.Set("page_size", strconv.Itoa(p.PageSize))
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

// Search runs one query against the search endpoint. Results keep the
// upstream order and never exceed the effective page size.
func (c *Client) Search(ctx context.Context, params SearchParams) (SearchResponse, error) {
	p, err := params.normalize()
	if err != nil {
		return SearchResponse{}, err
	}

	body, err := c.get(ctx, endpointSearch, c.endpointURL("search")+"?"+p.values().Encode())
	if err != nil {
		return SearchResponse{}, annotate(err, "search", "")
	}

	results, total, err := parseSearch(body, p.PageSize)
	if err != nil {
		return SearchResponse{}, annotate(err, "search", "")
	}

	return SearchResponse{
		Query:           p.Query,
		TotalHits:       total,
		ReturnedResults: len(results),
		Results:         results,
	}, nil
}

func parseSearch(body []byte, limit int) ([]SearchResult, int64, error) {
	if !gjson.ValidBytes(body) {
		return nil, 0, malformed("search response is not valid JSON")
	}
	root := gjson.ParseBytes(body)

	items := root.Get("collection.items")
	if !items.IsArray() {
		return nil, 0, malformed("collection.items is missing")
	}
	total := root.Get("collection.metadata.total_hits")
	if !total.Exists() {
		return nil, 0, malformed("collection.metadata.total_hits is missing")
	}

	results := make([]SearchResult, 0, min(limit, len(items.Array())))
	var parseErr error
	idx := 0
	items.ForEach(func(_, item gjson.Result) bool {
		if len(results) >= limit {
			return false
		}
		data := item.Get("data.0")
		if !data.IsObject() {
			parseErr = malformed("collection.items.%d.data is empty", idx)
			return false
		}
		idx++
		results = append(results, SearchResult{
			Title:        stringOr(data.Get("title"), defaultTitle),
			NASAID:       stringOr(data.Get("nasa_id"), ""),
			Description:  stringOr(data.Get("description"), ""),
			DateCreated:  stringOr(data.Get("date_created"), ""),
			MediaType:    stringOr(data.Get("media_type"), defaultMediaType),
			ThumbnailURL: optionalString(item.Get("links.0.href")),
		})
		return true
	})
	if parseErr != nil {
		return nil, 0, parseErr
	}
	return results, total.Int(), nil
}

// stringOr returns the string value of r, or fallback when the field is
// absent or null.
func stringOr(r gjson.Result, fallback string) string {
	if !r.Exists() || r.Type == gjson.Null {
		return fallback
	}
	return r.String()
}

func optionalString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

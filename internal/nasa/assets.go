package nasa

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
)

// AssetFiles lists every file of an item's asset manifest with its tier. An
// empty manifest is returned as an empty list.
func (c *Client) AssetFiles(ctx context.Context, nasaID string) (AssetFilesResponse, error) {
	id, err := requireID("assets", nasaID)
	if err != nil {
		return AssetFilesResponse{}, err
	}

	body, err := c.get(ctx, endpointAsset, c.endpointURL("asset", id))
	if err != nil {
		return AssetFilesResponse{}, annotate(err, "assets", "")
	}

	files, err := parseAssetManifest(body)
	if err != nil {
		return AssetFilesResponse{}, annotate(err, "assets", "")
	}
	return AssetFilesResponse{NASAID: id, TotalFiles: len(files), Files: files}, nil
}

func parseAssetManifest(body []byte) ([]AssetFile, error) {
	if !gjson.ValidBytes(body) {
		return nil, malformed("asset response is not valid JSON")
	}
	items := gjson.GetBytes(body, "collection.items")
	if !items.IsArray() {
		return nil, malformed("collection.items is missing")
	}

	files := []AssetFile{}
	items.ForEach(func(_, item gjson.Result) bool {
		href := item.Get("href").String()
		fileType, name := ClassifyFile(href)
		files = append(files, AssetFile{Type: fileType, Filename: name, URL: href})
		return true
	})
	return files, nil
}

func requireID(op, nasaID string) (string, error) {
	id := strings.TrimSpace(nasaID)
	if id == "" {
		return "", invalidInput(op, "nasa_id is required")
	}
	return id, nil
}

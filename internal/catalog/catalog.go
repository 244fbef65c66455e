// Package catalog serves the curated collection of notable NASA images. The
// data is compiled into the binary and never fetched, so it carries no
// freshness guarantee.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"sigs.k8s.io/yaml"
)

type Image struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Year        int    `json:"year"`
	Description string `json:"description,omitempty"`
}

// Collection is served from a constant table. Static is always true so
// consumers can tell it apart from live search results.
type Collection struct {
	Static bool    `json:"static"`
	Images []Image `json:"images"`
	Note   string  `json:"note"`
}

//go:embed famous.yaml
var famousYAML []byte

var (
	loadOnce sync.Once
	famous   Collection
	loadErr  error
)

// Famous returns the curated catalog. Each call gets its own copy of the
// image list.
func Famous() (Collection, error) {
	loadOnce.Do(func() {
		famous, loadErr = Parse(famousYAML)
	})
	if loadErr != nil {
		return Collection{}, loadErr
	}
	out := famous
	out.Images = append([]Image(nil), famous.Images...)
	return out, nil
}

// Parse decodes a catalog document and checks that every entry has a name
// and an identifier.
func Parse(data []byte) (Collection, error) {
	var doc struct {
		Note   string `json:"note"`
		Images []struct {
			Name        string `json:"name"`
			ID          string `json:"id"`
			Year        int    `json:"year"`
			Description string `json:"description"`
		} `json:"images"`
	}
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return Collection{}, fmt.Errorf("parse catalog: %w", err)
	}

	out := Collection{Static: true, Note: doc.Note, Images: make([]Image, 0, len(doc.Images))}
	for i, img := range doc.Images {
		if strings.TrimSpace(img.Name) == "" || strings.TrimSpace(img.ID) == "" {
			return Collection{}, fmt.Errorf("catalog entry %d: name and id are required", i)
		}
		out.Images = append(out.Images, Image{
			Name:        img.Name,
			ID:          img.ID,
			Year:        img.Year,
			Description: img.Description,
		})
	}
	return out, nil
}

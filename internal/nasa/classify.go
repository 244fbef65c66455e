package nasa

import "strings"

// Quality tiers in precedence order. Upstream filenames carry the tier as
// "~orig" on the asset endpoint and as a bare token elsewhere, so both forms
// are checked for every marker.
var tierMarkers = []struct {
	marker   string
	fileType FileType
}{
	{"orig", FileTypeOriginal},
	{"large", FileTypeLarge},
	{"medium", FileTypeMedium},
	{"small", FileTypeSmall},
	{"thumb", FileTypeThumbnail},
}

const (
	captionsSuffix   = ".srt"
	metadataFilename = "metadata.json"
)

// ClassifyFile returns the tier of an asset URL and its filename. The first
// matching rule wins.
func ClassifyFile(href string) (FileType, string) {
	name := FileName(href)
	return ClassifyFilename(name), name
}

func ClassifyFilename(name string) FileType {
	lower := strings.ToLower(name)
	for _, m := range tierMarkers {
		// The bare match decides; "~"+marker is a subset of it.
		if strings.Contains(lower, "~"+m.marker) || strings.Contains(lower, m.marker) {
			return m.fileType
		}
	}
	if strings.HasSuffix(lower, captionsSuffix) {
		return FileTypeCaptions
	}
	if lower == metadataFilename {
		return FileTypeMetadata
	}
	return FileTypeOther
}

// FileName is the last path segment of href, ignoring query and fragment.
func FileName(href string) string {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	return href[strings.LastIndex(href, "/")+1:]
}

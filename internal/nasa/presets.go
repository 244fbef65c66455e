package nasa

import "strings"

const (
	apollo11Query     = "apollo 11"
	apollo11YearStart = "1969"
	apollo11YearEnd   = "1972"

	// Apollo11ResourcesMaxPageSize keeps the overview listing short.
	Apollo11ResourcesMaxPageSize = 50
)

// Apollo11ImageSearch narrows a keyword search to Apollo 11 era images.
func Apollo11ImageSearch(keywords string, pageSize int) SearchParams {
	return SearchParams{
		Query:     strings.TrimSpace(apollo11Query + " " + strings.TrimSpace(keywords)),
		MediaType: "image",
		YearStart: apollo11YearStart,
		YearEnd:   apollo11YearEnd,
		PageSize:  pageSize,
	}
}

// Apollo11Resources lists Apollo 11 content of every media type.
func Apollo11Resources(pageSize int) SearchParams {
	return SearchParams{
		Query:     apollo11Query,
		YearStart: apollo11YearStart,
		YearEnd:   apollo11YearEnd,
		PageSize:  ClampPageSize(pageSize, Apollo11ResourcesMaxPageSize),
	}
}

package nasa

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

const (
	captionEncoding     = "cl100k_base"
	approxCharsPerToken = 4
)

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken

	// estimateTokensFunc is swapped in tests.
	estimateTokensFunc = countCaptionTokens
)

// estimateTokens approximates how much of a model context the text would use.
func estimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return estimateTokensFunc(text)
}

// countCaptionTokens encodes text with the embedded BPE ranks. The encoder
// never downloads anything, so captions calls make no requests beyond the
// NASA API. Without an encoder it falls back to one token per four bytes.
func countCaptionTokens(text string) int {
	if enc := captionEncoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return max(1, len(text)/approxCharsPerToken)
}

func captionEncoder() *tiktoken.Tiktoken {
	encoderOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
		if enc, err := tiktoken.GetEncoding(captionEncoding); err == nil {
			encoder = enc
		}
	})
	return encoder
}

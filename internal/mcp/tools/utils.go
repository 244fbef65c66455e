package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhGeri/NASA-MCP/internal/mcp/tools/types"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

// stringArgument accepts strings and, for fields like years that hosts
// sometimes send as numbers, whole numbers.
func stringArgument(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// intArgument returns (0, nil) when key is absent. Values outside the int32
// range saturate so that later clamping still sees a huge number.
func intArgument(args map[string]any, key string) (int, error) {
	switch v := args[key].(type) {
	case nil:
		return 0, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be a whole number", key)
		}
		return saturate(v), nil
	case int:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s must be a number", key)
		}
		return saturate(float64(n)), nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

func saturate(v float64) int {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int(v)
	}
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func jsonResult(v any) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal(v)))
}

// errorResult turns any failure into a tool result the host can show. It is
// never returned as a Go error so an interactive session keeps going.
func errorResult(err error, nasaID string) *mcp.CallToolResult {
	e := nasa.AsError(err)
	body := types.ErrorResult{
		Error:      e.Error(),
		Kind:       string(e.Kind),
		Retryable:  e.Retryable(),
		StatusCode: e.StatusCode,
		Stage:      e.Stage,
		NASAID:     nasaID,
	}
	if e.Stage == nasa.StageContent {
		switch e.Op {
		case "captions":
			body.CaptionURL = e.URL
		case "metadata":
			body.MetadataURL = e.URL
		}
	}
	result := mcp.NewToolResultText(string(mustMarshal(body)))
	result.IsError = true
	return result
}

func inputError(op, format string, args ...any) *mcp.CallToolResult {
	return errorResult(&nasa.Error{Kind: nasa.KindInvalidInput, Op: op, Err: fmt.Errorf(format, args...)}, "")
}

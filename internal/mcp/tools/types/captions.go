package types

import "github.com/nhGeri/NASA-MCP/internal/nasa"

type CaptionsResponse = nasa.CaptionsResponse

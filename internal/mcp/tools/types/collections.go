package types

import "github.com/nhGeri/NASA-MCP/internal/catalog"

type (
	CuratedImage      = catalog.Image
	CuratedCollection = catalog.Collection
)

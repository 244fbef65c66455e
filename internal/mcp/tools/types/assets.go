package types

import "github.com/nhGeri/NASA-MCP/internal/nasa"

type (
	FileType           = nasa.FileType
	AssetFile          = nasa.AssetFile
	AssetFilesResponse = nasa.AssetFilesResponse
)

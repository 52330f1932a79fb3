//go:build !nodocs

package swaggerkit

import (
	"reduce/internal/services/web/docs"
)

// docReader returns the document swag generated from the api annotations
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

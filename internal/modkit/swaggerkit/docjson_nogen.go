//go:build nodocs

package swaggerkit

// docReader (nodocs build) is an empty document so the ui still loads
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"reduce API","version":"0.0.0"},"paths":{}}`
}

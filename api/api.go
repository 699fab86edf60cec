// Package api holds the OpenAPI document of the HTTP surface.
package api

import _ "embed"

// OpenAPI is the YAML source of the API description. The HTTP adapter validates
// requests against it and serves it as JSON under /swagger.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Package api carries the OpenAPI contract of the HTTP surface.
package api

import _ "embed"

// Spec is openapi.yaml as shipped with the binary.
//
//go:embed openapi.yaml
var Spec []byte

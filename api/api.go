// Package api embeds the OpenAPI description served and validated by the
// HTTP adapter.
package api

import _ "embed"

// Spec is the raw OpenAPI document.
//
//go:embed openapi.yaml
var Spec []byte

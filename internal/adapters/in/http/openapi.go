package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed api/openapi.yml
var openapiContract []byte

// LoadContract parses and validates the embedded OpenAPI contract.
// Called at startup so a malformed contract fails the boot instead of
// quietly serving a broken document.
func LoadContract() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiContract)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI contract: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("OpenAPI contract is invalid: %w", err)
	}

	return doc, nil
}

// ServeContract handles GET /openapi.yml, returning the raw contract.
func (s *Server) ServeContract(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openapiContract)
}

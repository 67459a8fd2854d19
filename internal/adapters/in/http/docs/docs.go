// Package docs serves the OpenAPI document of the API and a Swagger UI for it.
package docs

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var document []byte

var registerOnce sync.Once

// spec feeds the embedded document to swag, which echo-swagger reads.
type spec struct{}

func (spec) ReadDoc() string {
	return string(document)
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// Register validates the document and exposes it at /openapi.json and the
// UI at /swagger/*. An invalid document fails startup.
func Register(ctx context.Context, e *echo.Echo) error {
	if _, err := Load(ctx); err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, spec{})
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, document)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))
	return nil
}

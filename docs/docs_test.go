package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/catalogo-inventario/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var openapi struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]any         `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &openapi))
	assert.Equal(t, docs.SwaggerInfo.Title, openapi.Info.Title)
	for _, p := range []string{
		"/api/v1/products",
		"/api/v1/products/{id}",
		"/api/v1/products/metrics",
		"/api/v1/products/metrics/pdf",
		"/api/v1/categories",
		"/api/v1/categories/{id}",
	} {
		assert.Contains(t, openapi.Paths, p)
	}
}

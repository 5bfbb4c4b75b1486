package routes

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/docs"
)

type swaggerOperation struct {
	Security  []map[string][]string      `json:"security"`
	Responses map[string]json.RawMessage `json:"responses"`
}

func swaggerPaths(t *testing.T) map[string]map[string]swaggerOperation {
	t.Helper()
	var doc struct {
		Paths map[string]map[string]swaggerOperation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc.Paths
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, &config.Config{}, &Services{})

	paths := swaggerPaths(t)
	param := regexp.MustCompile(`:(\w+)`)

	documented := 0
	for _, route := range r.Routes() {
		path := param.ReplaceAllString(strings.TrimPrefix(route.Path, "/api"), "{$1}")
		ops, ok := paths[path]
		if !assert.True(t, ok, "undocumented path %s", path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.True(t, ok, "undocumented operation %s %s", route.Method, path)
		documented++
	}

	total := 0
	for _, ops := range paths {
		total += len(ops)
	}
	assert.Equal(t, len(r.Routes()), total, "documented operations that are not routed")
	assert.Equal(t, total, documented)
}

func TestSwaggerPublicRoutesCannotFailAuth(t *testing.T) {
	paths := swaggerPaths(t)

	public := map[string]string{
		"/users/register": "post",
		"/users/login":    "post",
		"/email/contact":  "post",
	}
	for path, method := range public {
		op := paths[path][method]
		assert.Empty(t, op.Security, path)
		assert.NotContains(t, op.Responses, "403", path)
		assert.NotContains(t, op.Responses, "404", path)
	}
	assert.NotContains(t, paths["/users/register"]["post"].Responses, "401")
	assert.NotContains(t, paths["/email/contact"]["post"].Responses, "401")

	for path, ops := range paths {
		for method, op := range ops {
			if public[path] == method {
				continue
			}
			assert.NotEmpty(t, op.Security, "%s %s", method, path)
			assert.Contains(t, op.Responses, "401", "%s %s", method, path)
		}
	}
}

package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

func TestDocCoversAnnotatedRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	files, err := filepath.Glob(filepath.Join("..", "handler", "*.go"))
	require.NoError(t, err)

	found := 0
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			found++
			path, method := m[1], strings.ToLower(m[2])
			_, ok := doc.Paths[path][method]
			assert.True(t, ok, "%s %s from %s is missing", method, path, filepath.Base(file))
		}
	}
	assert.Equal(t, found, countOperations(doc.Paths), "document lists routes with no annotation")

	refs := regexp.MustCompile(`#/definitions/([\w.]+)`).FindAllStringSubmatch(raw, -1)
	for _, ref := range refs {
		assert.Contains(t, doc.Definitions, ref[1])
	}
}

func countOperations(paths map[string]map[string]json.RawMessage) int {
	n := 0
	for _, ops := range paths {
		n += len(ops)
	}
	return n
}

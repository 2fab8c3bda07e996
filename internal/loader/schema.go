package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/gantt/internal/models"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func projectSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("schema.json")
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded YAML document against the embedded
// project schema. The document is round-tripped through JSON first so the
// validator only sees JSON types.
func validateDocument(doc any) error {
	schema, err := projectSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return models.Wrap(models.ErrSchema, err, "document must use string keys")
	}

	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return models.Wrap(models.ErrSchema, err, "document is not representable as JSON")
	}

	if err := schema.Validate(obj); err != nil {
		return mapSchemaError(err)
	}
	return nil
}

// mapSchemaError reports the first leaf cause of a validation failure.
func mapSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return models.Wrap(models.ErrSchema, err, "schema validation failed")
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	path := pointerToPath(leaf.InstanceLocation)
	if path == "" {
		return models.Errorf(models.ErrSchema, "%s", leaf.Message)
	}
	return models.Errorf(models.ErrSchema, "%s: %s", path, leaf.Message)
}

// pointerToPath turns "/tasks/2/name" into "tasks[2].name".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package model

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Schema names accepted by Validate.
const (
	ContactSchema = "contact"
	PostSchema    = "post"
)

// Validate checks a decoded document against one of the embedded schemas.
// It only checks shape; field rules such as email format are applied by the
// actions so their messages stay user-facing.
func Validate(schema string, doc interface{}) error {
	return validate(schema, gojsonschema.NewGoLoader(doc))
}

// ValidateJSON is Validate for a raw request body.
func ValidateJSON(schema string, body []byte) error {
	return validate(schema, gojsonschema.NewBytesLoader(body))
}

func validate(schema string, docLoader gojsonschema.JSONLoader) error {
	raw, err := schemaFS.ReadFile("schemas/" + schema + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %q: %w", schema, err)
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(raw), docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

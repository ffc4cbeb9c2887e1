package handler

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request bodies on the public endpoints are validated against embedded JSON
// schemas before they touch storage; the schemas double as documentation of
// the wire contract.

var (
	reportSchema = mustCompile(`{
		"type": "object",
		"required": ["reason"],
		"properties": {
			"reason": {"type": "string", "minLength": 1, "maxLength": 500}
		},
		"additionalProperties": false
	}`)

	feedbackSchema = mustCompile(`{
		"type": "object",
		"required": ["message"],
		"properties": {
			"name": {"type": "string", "maxLength": 100},
			"message": {"type": "string", "minLength": 1, "maxLength": 2000}
		},
		"additionalProperties": false
	}`)
)

func mustCompile(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return s
}

// validateBody checks body against schema and returns a single-line error
// describing every violation.
func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON")
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

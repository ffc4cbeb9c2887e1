package cmd

import (
	"encoding/json"

	"github.com/itchyny/gojq"
)

// compileJqFilter parses and compiles a jq filter expression.
func compileJqFilter(filter string) (*gojq.Code, error) {
	query, err := gojq.Parse(filter)
	if err != nil {
		return nil, err
	}
	return gojq.Compile(query)
}

// matchesJqFilter evaluates a compiled jq filter against one list item.
// Returns true if the filter matches (expression evaluates to true or
// non-nil). If code is nil, returns true (no filter = match all).
func matchesJqFilter(code *gojq.Code, item any) bool {
	if code == nil {
		return true
	}

	// Round-trip through JSON so struct fields are visible under their
	// wire names.
	data, err := json.Marshal(item)
	if err != nil {
		return false
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return false
	}

	iter := code.Run(value)
	v, ok := iter.Next()
	if !ok {
		return false
	}

	if _, isErr := v.(error); isErr {
		return false
	}

	if b, ok := v.(bool); ok {
		return b
	}

	return v != nil
}

// Package schema validates caller-supplied Replicate input documents
// before they are merged into a prediction payload.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Reserved keys are owned by the option mapper; an inputs file must not
// override them.
const inputsSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"prompt": false,
		"width": false,
		"height": false,
		"num_outputs": false
	}
}`

var compiled = jsonschema.MustCompileString("inputs.json", inputsSchema)

// ValidateInputs checks that raw is a JSON object carrying none of the
// reserved prediction keys and returns the decoded map.
func ValidateInputs(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty inputs document")
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing inputs: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid inputs: %s", condense(err))
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("inputs must be a JSON object")
	}
	return m, nil
}

// condense flattens the validator's multi-line error into one line for CLI
// diagnostics.
func condense(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

// internal/common/validation/turn.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// turnSchema describes the minimum envelope a fulfillment request must carry
// before it is allowed to reach the dispatcher. Slot contents are not
// validated here; absent-vs-empty policy belongs to the slot gate.
var turnSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"sessionState"},
	"properties": map[string]interface{}{
		"sessionState": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"intent"},
			"properties": map[string]interface{}{
				"intent": map[string]interface{}{
					"type":     "object",
					"required": []interface{}{"name"},
					"properties": map[string]interface{}{
						"name": map[string]interface{}{
							"type":      "string",
							"minLength": 1,
						},
						"slots": map[string]interface{}{
							"type": []interface{}{"object", "null"},
						},
					},
				},
			},
		},
	},
}

// ValidateTurn checks a raw fulfillment payload against the turn envelope
// schema and returns a single descriptive error when it does not conform.
func ValidateTurn(payload []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(turnSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("turn envelope invalid: %s", strings.Join(errs, "; "))
	}

	return nil
}

// internal/store/decimals.go
package store

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConvertDecimals converts a DynamoDB attribute value tree into plain Go
// values, turning every number into a float64. Lists and maps are walked
// recursively with structure preserved. Every record read from the store goes
// through this before any message formatting touches it.
func ConvertDecimals(av types.AttributeValue) (interface{}, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", v.Value, err)
		}
		return f, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberBOOL:
		return v.Value, nil
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberL:
		out := make([]interface{}, 0, len(v.Value))
		for _, item := range v.Value {
			plain, err := ConvertDecimals(item)
			if err != nil {
				return nil, err
			}
			out = append(out, plain)
		}
		return out, nil
	case *types.AttributeValueMemberM:
		out := make(map[string]interface{}, len(v.Value))
		for key, item := range v.Value {
			plain, err := ConvertDecimals(item)
			if err != nil {
				return nil, err
			}
			out[key] = plain
		}
		return out, nil
	case *types.AttributeValueMemberSS:
		out := make([]interface{}, 0, len(v.Value))
		for _, s := range v.Value {
			out = append(out, s)
		}
		return out, nil
	case *types.AttributeValueMemberNS:
		out := make([]interface{}, 0, len(v.Value))
		for _, n := range v.Value {
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return nil, fmt.Errorf("parse number %q: %w", n, err)
			}
			out = append(out, f)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported attribute value type %T", av)
	}
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func numberField(m map[string]interface{}, key string) float64 {
	if f, ok := m[key].(float64); ok {
		return f
	}
	return 0
}

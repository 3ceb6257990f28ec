// internal/domain/homework/check.go
package homework

import (
	"fmt"
	"math"
)

// CheckResponse validates the decoded API payload and returns its homework
// records unchanged. An empty list is valid.
func CheckResponse(response any) ([]any, error) {
	payload, ok := response.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: API response is %s, expected an object", ErrTypeMismatch, typeName(response))
	}

	raw, ok := payload[KeyHomeworks]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: key %q is absent from the API response", ErrMissingField, KeyHomeworks)
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s, expected an array", ErrTypeMismatch, KeyHomeworks, typeName(raw))
	}
	return homeworks, nil
}

// ParseStatus builds the notification text for a single homework record.
func ParseStatus(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: homework record is %s, expected an object", ErrTypeMismatch, typeName(record))
	}

	name, ok := hw[KeyHomeworkName]
	if !ok {
		return "", fmt.Errorf("%w: key %q is absent from the homework record", ErrMissingField, KeyHomeworkName)
	}
	rawStatus, ok := hw[KeyStatus]
	if !ok {
		return "", fmt.Errorf("%w: key %q is absent from the homework record", ErrMissingField, KeyStatus)
	}

	status, _ := rawStatus.(string)
	verdict, known := Verdict(Status(status))
	if !known {
		return "", fmt.Errorf("%w: %v", ErrUnknownStatus, rawStatus)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%v\". %s", name, verdict), nil
}

// CurrentDate extracts the server-side "current_date" cursor. The second
// result is false when the key is missing or does not hold an integer.
func CurrentDate(response any) (int64, bool) {
	payload, ok := response.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := payload[KeyCurrentDate].(type) {
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// typeName names JSON-decoded values the way the API documents them.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

package catalog

import (
	"bytes"
	"encoding/json"
)

// HasRequiredFields reports whether every named field exists on the JSON
// object and carries a non-null value. An empty field list is vacuously true
// before the input shape is even considered.
func HasRequiredFields(data []byte, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return false
	}
	for _, field := range fields {
		value, ok := obj[field]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return false
		}
	}
	return true
}

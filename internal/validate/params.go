package validate

import "fmt"

// Validator checks a single parameter value. Values arrive as decoded JSON
// (string, float64, bool, nil, ...), so validators must tolerate any type.
type Validator func(value any) bool

// Result aggregates per-field outcomes from CheckParams. Errors is keyed by
// parameter name and holds a message suitable for showing next to the field.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`
}

// CheckParams runs every registered validator against its parameter. It never
// short-circuits: all fields are checked and every failure is reported.
// Parameters absent from params are validated against nil, which fails unless
// the validator explicitly allows it.
func CheckParams(params map[string]any, validators map[string]Validator) Result {
	result := Result{Valid: true, Errors: map[string]string{}}
	for key, validator := range validators {
		if validator(params[key]) {
			continue
		}
		result.Valid = false
		result.Errors[key] = fmt.Sprintf("Invalid value for parameter: %s", key)
	}
	return result
}

// String adapts a string predicate into a Validator that rejects any
// non-string value.
func String(check func(string) bool) Validator {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && check(s)
	}
}

// Required accepts any non-nil value.
func Required(value any) bool {
	return value != nil
}

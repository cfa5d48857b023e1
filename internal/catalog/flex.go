package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// The catalog backends disagree on scalar encodings: ids arrive as strings or
// numbers, prices as numbers or numeric strings, flags as booleans or 0/1.
// These wrapper types absorb that variance so the normalizers only deal with
// one representation. A shape they cannot read degrades to the zero value
// rather than failing the surrounding record; rejection is decided solely by
// the required-field checks in the normalizers.

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	*f = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	// A numeric zero counts as unset, the way the backends emit it for
	// missing ids. The string "0" stays "0".
	if v, err := n.Float64(); err == nil && v == 0 {
		return nil
	}
	*f = flexString(n.String())
	return nil
}

type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		*f = flexFloat{Value: v, Set: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*f = flexFloat{Value: v, Set: true}
	return nil
}

type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var ff flexFloat
	_ = ff.UnmarshalJSON(data)
	*f = flexInt{Value: int(ff.Value), Set: ff.Set}
	return nil
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	*f = false
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("0")):
	case bytes.Equal(data, []byte("true")):
		*f = true
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*f = s != "" && s != "false" && s != "0"
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return nil
		}
		*f = v != 0
	}
	return nil
}

// stringList accepts a JSON array of strings or a string-encoded array, the
// same quirk the scraper exports have for image lists.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	*s = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return nil
		}
		if encoded == "" {
			return nil
		}
		var list []string
		if err := json.Unmarshal([]byte(encoded), &list); err != nil {
			return nil
		}
		*s = list
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	*s = list
	return nil
}

// categoryName accepts a flat category string, a {"name": ...} object, or a
// bare number.
type categoryName string

func (c *categoryName) UnmarshalJSON(data []byte) error {
	*c = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Name flexString `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		*c = categoryName(obj.Name)
		return nil
	}
	if data[0] == '[' {
		return nil
	}
	var s flexString
	_ = s.UnmarshalJSON(data)
	*c = categoryName(s)
	return nil
}

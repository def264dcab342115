// Package jsonfield handles array-valued columns that are persisted as JSON
// text (tags, keywords, requirements and so on).
package jsonfield

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list of strings stored as a JSON array in a TEXT column.
//
// On input it accepts either a JSON array or a single string; a plain string
// becomes a one-element list. Column values that are not valid JSON are read
// back as a one-element list holding the raw text.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("jsonfield: encode list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		*l = parseText(v)
		return nil
	case []byte:
		*l = parseText(string(v))
		return nil
	default:
		return fmt.Errorf("jsonfield: cannot scan %T into StringList", src)
	}
}

// MarshalJSON always renders an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// UnmarshalJSON accepts an array (items are stringified) or a single string.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{s}
		return nil
	}

	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("jsonfield: expected array or string: %w", err)
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		out = append(out, stringify(item))
	}
	*l = out
	return nil
}

// Text is a free-text field that also takes a number or a boolean from JSON
// and keeps its literal form, so a salary of 1500 is stored as "1500".
type Text string

// UnmarshalJSON accepts any scalar; null leaves the field empty.
func (t *Text) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return fmt.Errorf("jsonfield: expected a scalar, got %s", data)
	}
	*t = Text(stringify(v))
	return nil
}

// Ptr returns the text as a *string for nullable columns.
func (t Text) Ptr() *string {
	s := string(t)
	return &s
}

// ParseStrict decodes a stored JSON array. Empty or invalid text yields an
// empty list instead of the raw text.
func ParseStrict(s string) StringList {
	var items []interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &items); err != nil {
		return StringList{}
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		out = append(out, stringify(item))
	}
	return out
}

func parseText(s string) StringList {
	s = strings.TrimSpace(s)
	if s == "" {
		return StringList{}
	}
	var items []interface{}
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return StringList{s}
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		out = append(out, stringify(item))
	}
	return out
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// EncodeText converts an arbitrary request value into the JSON text stored
// in the column. Strings pass through untouched; nil becomes "[]".
func EncodeText(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "[]", nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", fmt.Errorf("jsonfield: encode value: %w", err)
		}
		return string(b), nil
	}
}

// DecodeText parses stored JSON text for output. Text that is not valid JSON
// is returned unchanged.
func DecodeText(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return s
	}
	var out interface{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return s
	}
	return out
}

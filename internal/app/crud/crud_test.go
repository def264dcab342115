package crud

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTruthy(t *testing.T) {
	testCases := []struct {
		in   interface{}
		want bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{json.Number("0"), false},
		{json.Number("1"), true},
		{json.Number("0.5"), true},
		{float64(0), false},
		{"", false},
		{"0", false},
		{"false", false},
		{" FALSE ", false},
		{"yes", true},
		{"1", true},
		{[]interface{}{}, true},
	}
	for _, tc := range testCases {
		if got := truthy(tc.in); got != tc.want {
			t.Errorf("truthy(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColumnValue(t *testing.T) {
	testCases := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{name: "integer", in: json.Number("2024"), want: int64(2024)},
		{name: "float", in: json.Number("3.5"), want: 3.5},
		{name: "bool", in: true, want: int64(1)},
		{name: "string", in: "text", want: "text"},
		{name: "nil", in: nil, want: nil},
		{name: "array", in: []interface{}{"a", "b"}, want: `["a","b"]`},
		{name: "object", in: map[string]interface{}{"k": "v"}, want: `{"k":"v"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := columnValue(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("columnValue(%#v) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAdminResources(t *testing.T) {
	seen := map[string]Resource{}
	for _, r := range AdminResources() {
		seen[r.Table] = r
		for _, f := range append(append([]string{}, r.JSONFields...), r.BoolFields...) {
			if !contains(r.Fields, f) {
				t.Errorf("%s: %s is not an allowed field", r.Table, f)
			}
		}
	}
	for _, table := range []string{"news", "publications", "lectures", "graduates"} {
		if _, ok := seen[table]; !ok {
			t.Errorf("missing resource %s", table)
		}
	}
	if !seen["news"].isBool("published") {
		t.Error("news.published should be stored as a flag")
	}
	if !seen["publications"].isJSON("keywords") || !seen["publications"].isJSON("authors") {
		t.Error("publication keywords and authors are JSON fields")
	}
	if seen["lectures"].TouchUpdatedAt {
		t.Error("lectures leave updated_at to the column default")
	}
}

package jsonfield

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  StringList
	}{
		{name: "array", input: `["a","b"]`, want: StringList{"a", "b"}},
		{name: "empty array", input: `[]`, want: StringList{}},
		{name: "single string", input: `"only one"`, want: StringList{"only one"}},
		{name: "blank string", input: `"  "`, want: StringList{}},
		{name: "mixed items", input: `["x", 2, true]`, want: StringList{"x", "2", "true"}},
		{name: "null", input: `null`, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestStringListRejectsObjects(t *testing.T) {
	var got StringList
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Fatal("expected error for object input")
	}
}

func TestStringListColumnRoundTrip(t *testing.T) {
	in := StringList{"امتصاص", "HPLC"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out StringList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: %#v vs %#v", in, out)
	}
}

func TestStringListScanLegacyText(t *testing.T) {
	var out StringList
	if err := out.Scan([]byte("خريج صيدلة، معرفة باللغة الإنجليزية")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != 1 || out[0] != "خريج صيدلة، معرفة باللغة الإنجليزية" {
		t.Errorf("legacy text not preserved: %#v", out)
	}
}

func TestStringListNilValueIsNull(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil || v != nil {
		t.Fatalf("nil list should store NULL, got %v, %v", v, err)
	}
	b, _ := json.Marshal(l)
	if string(b) != "[]" {
		t.Errorf("nil list should marshal to [], got %s", b)
	}
}

func TestEncodeDecodeText(t *testing.T) {
	testCases := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "string passes through", in: "already,text", want: "already,text"},
		{name: "nil", in: nil, want: "[]"},
		{name: "slice", in: []interface{}{"Smith", "Doe"}, want: `["Smith","Doe"]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeText(tc.in)
			if err != nil {
				t.Fatalf("EncodeText: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}

	if got := DecodeText(`["a"]`); !reflect.DeepEqual(got, []interface{}{"a"}) {
		t.Errorf("DecodeText array: %#v", got)
	}
	if got := DecodeText("plain words"); got != "plain words" {
		t.Errorf("DecodeText should keep invalid JSON as text, got %#v", got)
	}
}

func TestParseStrict(t *testing.T) {
	if got := ParseStrict(`["a","b"]`); !reflect.DeepEqual(got, StringList{"a", "b"}) {
		t.Errorf("ParseStrict array = %#v", got)
	}
	for _, in := range []string{"", "not json", `{"a":1}`} {
		if got := ParseStrict(in); got == nil || len(got) != 0 {
			t.Errorf("ParseStrict(%q) = %#v, want empty list", in, got)
		}
	}
}

func TestTextUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		input string
		want  Text
	}{
		{input: `"حسب الخبرة"`, want: "حسب الخبرة"},
		{input: `1500`, want: "1500"},
		{input: `2.5`, want: "2.5"},
		{input: `true`, want: "true"},
		{input: `null`, want: ""},
	}
	for _, tc := range testCases {
		var got Text
		if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}

	var v Text
	for _, bad := range []string{`["a"]`, `{"a":1}`} {
		if err := json.Unmarshal([]byte(bad), &v); err == nil {
			t.Errorf("Unmarshal(%s) should fail", bad)
		}
	}
}

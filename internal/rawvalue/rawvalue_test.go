package rawvalue

import (
	"encoding/json"
	"testing"
)

func TestNormalize_YAMLShapes(t *testing.T) {
	in := map[any]any{
		"a": 1,
		"b": []any{int64(2), 3.5, "x"},
		"c": map[any]any{"d": true},
	}
	got, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", got)
	}
	if m["a"] != json.Number("1") {
		t.Fatalf("int not folded to json.Number: %#v", m["a"])
	}
	seq := m["b"].([]any)
	if seq[0] != json.Number("2") || seq[1] != 3.5 || seq[2] != "x" {
		t.Fatalf("sequence not normalized: %#v", seq)
	}
	if m["c"].(map[string]any)["d"] != true {
		t.Fatalf("nested mapping not normalized: %#v", m["c"])
	}
}

func TestNormalize_RejectsNonStringKeys(t *testing.T) {
	if _, err := Normalize(map[any]any{1: "x"}); err == nil {
		t.Fatalf("expected error for non-string key")
	}
}

func TestEqual_NumbersAcrossRepresentations(t *testing.T) {
	if !Equal(json.Number("3"), 3) {
		t.Fatalf("json.Number vs int should be equal")
	}
	if !Equal(float64(3), json.Number("3.0")) {
		t.Fatalf("float64 vs json.Number should be equal")
	}
	if Equal(json.Number("3"), "3") {
		t.Fatalf("number vs string must not be equal")
	}
}

func TestDeepCopy_Independent(t *testing.T) {
	src := map[string]any{"a": []any{map[string]any{"b": "x"}}}
	cp := DeepCopy(src).(map[string]any)
	cp["a"].([]any)[0].(map[string]any)["b"] = "y"
	if src["a"].([]any)[0].(map[string]any)["b"] != "x" {
		t.Fatalf("copy aliases source")
	}
	if !Equal(src, DeepCopy(src)) {
		t.Fatalf("copy should compare equal to source")
	}
}

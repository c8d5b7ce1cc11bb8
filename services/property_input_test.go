package services

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStringList_Decoding(t *testing.T) {
	cases := []struct {
		body string
		want []string
	}{
		{`{"amenities": ["Bonfire", "DJ"]}`, []string{"Bonfire", "DJ"}},
		{`{"amenities": "[\"Bonfire\"]"}`, []string{"Bonfire"}},
		{`{"amenities": ""}`, []string{}},
		{`{"amenities": []}`, []string{}},
	}
	for _, tc := range cases {
		var in PropertyInput
		if err := json.Unmarshal([]byte(tc.body), &in); err != nil {
			t.Errorf("%s: %v", tc.body, err)
			continue
		}
		if len(in.Amenities) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.body, in.Amenities, tc.want)
			continue
		}
		for i := range tc.want {
			if in.Amenities[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.body, in.Amenities, tc.want)
			}
		}
	}
}

func TestStringList_RejectsNonStrings(t *testing.T) {
	for _, body := range []string{
		`{"policies": [1, 2]}`,
		`{"policies": "not json"}`,
		`{"policies": {"a": "b"}}`,
	} {
		var in PropertyInput
		err := json.Unmarshal([]byte(body), &in)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", body, err)
		}
	}
}

func TestPatchColumns_OnlyPresentFields(t *testing.T) {
	var patch PropertyPatch
	if err := json.Unmarshal([]byte(`{"title": "Sunset Villa", "is_active": false}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cols, err := patch.columns()
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if len(cols) != 3 || cols["slug"] != "sunset-villa" || cols["is_active"] != false {
		t.Errorf("columns = %v", cols)
	}
	if patch.Images != nil {
		t.Error("absent images must stay nil")
	}

	if err := json.Unmarshal([]byte(`{"images": []}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if patch.Images == nil || len(*patch.Images) != 0 {
		t.Error("present empty images must be a non-nil empty list")
	}
}

func TestDecodeList_Tolerant(t *testing.T) {
	if got := decodeList(nil); got == nil || len(got) != 0 {
		t.Errorf("nil column = %v", got)
	}
	if got := decodeList([]byte("null")); got == nil || len(got) != 0 {
		t.Errorf("null column = %v", got)
	}
	if got := string(encodeList(nil)); got != "[]" {
		t.Errorf("encodeList(nil) = %s", got)
	}
}

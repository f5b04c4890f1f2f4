package core

import (
	"errors"
	"testing"
)

func TestRecord_EncodeRoundTrip(t *testing.T) {
	r := mustLoad(t)

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	again, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes(Encode()) error = %v\n%s", err, data)
	}

	if !r.Equal(again) {
		t.Errorf("re-loaded record differs:\n%s", data)
	}

	second, err := again.Encode()
	if err != nil {
		t.Fatalf("second Encode() error = %v", err)
	}
	if string(second) != string(data) {
		t.Errorf("Encode() is not stable:\n%s\n---\n%s", data, second)
	}
}

func TestRecord_EncodeNumericKeys(t *testing.T) {
	input := "theme:\n  extend:\n    colors:\n      50:\n        DEFAULT: \"#f0fdf4\"\n    borderRadius:\n      2: 1rem\n"

	r, err := LoadBytes([]byte(input))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	again, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes(Encode()) error = %v\n%s", err, data)
	}
	if !r.Equal(again) {
		t.Errorf("re-loaded record differs:\n%s", data)
	}

	if got, ok := again.Get(ParsePath("borderRadius.2")); !ok || got != "1rem" {
		t.Errorf("Get(borderRadius.2) after round trip = %v, %v; want 1rem", got, ok)
	}
	if got, ok := again.Get(ParsePath("colors.50.DEFAULT")); !ok || got != "#f0fdf4" {
		t.Errorf("Get(colors.50.DEFAULT) after round trip = %v, %v; want #f0fdf4", got, ok)
	}
}

func TestNewRecord(t *testing.T) {
	theme := Theme{
		Colors:       map[string]Palette{"brand": {ShadeDefault: "#6366f1"}},
		BorderRadius: map[string]string{"card": "0.75rem"},
	}

	r, err := NewRecord([]string{"./web/**/*.templ"}, theme, nil)
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}

	theme.Colors["brand"][ShadeDefault] = "#000000"
	if got, _ := r.Get(ParsePath("colors.brand.DEFAULT")); got != "#6366f1" {
		t.Errorf("Get(colors.brand.DEFAULT) = %v, want the value at construction", got)
	}

	bad := Theme{Colors: map[string]Palette{"brand": {ShadeDefault: "#66"}}}
	if _, err := NewRecord(nil, bad, nil); !errors.Is(err, ErrMalformedConfiguration) {
		t.Errorf("NewRecord() with bad color = %v, want ErrMalformedConfiguration", err)
	}
}

package validation

import (
	"errors"
	"testing"
)

func TestFormatValidValues(t *testing.T) {
	type format string

	cases := []struct {
		name   string
		values []format
		want   string
	}{
		{name: "none", want: ""},
		{name: "one", values: []format{"json"}, want: "json"},
		{name: "two", values: []format{"json", "yaml"}, want: "json or yaml"},
		{name: "three", values: []format{"json", "yaml", "ics"}, want: "json, yaml, or ics"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValidValues(tc.values); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatInvalidValueError(t *testing.T) {
	type format string

	base := errors.New("unknown export format")
	err := FormatInvalidValueError(base, format("csv"), []format{"json", "ics"})
	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}

	want := `unknown export format "csv": want json or ics`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

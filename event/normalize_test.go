package event

import (
	"reflect"
	"testing"
)

func TestNormalizeSubject(t *testing.T) {
	cases := []struct {
		name     string
		subject  string
		fallback string
		want     string
	}{
		{name: "lowercases", subject: "Class", fallback: "other", want: "class"},
		{name: "trims", subject: "  home\t", fallback: "other", want: "home"},
		{name: "empty uses fallback", subject: "", fallback: "Work", want: "work"},
		{name: "blank uses fallback", subject: "   ", fallback: "other", want: "other"},
		{name: "empty fallback uses default", subject: "", fallback: "", want: DefaultSubject},
		{name: "unicode", subject: "ÉCOLE", fallback: "other", want: "école"},
		{name: "composes", subject: "Cafe\u0301", fallback: "other", want: "caf\u00e9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeSubject(tc.subject, tc.fallback); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeSubjects(t *testing.T) {
	got := NormalizeSubjects([]string{"Other", "class", " ", "OTHER", "uts"})
	want := []string{"other", "class", "uts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

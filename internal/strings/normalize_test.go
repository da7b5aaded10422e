package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "only spaces", value: "   \t\n", want: ""},
		{name: "collapses", value: "  take   a\tbath \n", want: "take a bath"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tc.value); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestJoinWords(t *testing.T) {
	if got := JoinWords([]string{"take", " a ", "bath"}); got != "take a bath" {
		t.Fatalf("expected %q, got %q", "take a bath", got)
	}
	if got := JoinWords(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("body\r\n\n"); got != "body" {
		t.Fatalf("unexpected %q", got)
	}
}

package ui

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	builder := NewTableBuilder([]string{"SUBJECT", "PENDING"}, 2)
	builder.AddRow("class", "3")
	builder.AddRow("electra", "12")

	want := "" +
		"SUBJECT  PENDING\n" +
		"class    3\n" +
		"electra  12\n"
	if got := builder.String(); got != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	got := FormatTable([]string{"COL"}, [][]string{{"Hello\nWorld\r\nAgain\tTab"}})

	want := "COL\nHello World Again Tab\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatTableIgnoresANSICodes(t *testing.T) {
	got := FormatTable([]string{"A", "B"}, [][]string{{"\x1b[1mx\x1b[0m", "y"}})

	want := "A  B\n\x1b[1mx\x1b[0m  y\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

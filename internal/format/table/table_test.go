package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"dev", "2 windows", "(current)"},
		{"scratchpad", "1 window", ""},
	}
	got := Format(rows, AlignLeft, AlignLeft, AlignLeft)
	want := []string{
		"dev         2 windows  (current)",
		"scratchpad  1 window",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"a", "10"},
		{"bb", "9"},
	}
	got := Format(rows, AlignLeft, AlignRight)
	if got[0] != "a   10" || got[1] != "bb   9" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatDefaultsMissingAlignmentsToLeft(t *testing.T) {
	rows := [][]string{{"x", "y"}}
	if got := Format(rows); got[0] != "x  y" {
		t.Fatalf("unexpected row %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

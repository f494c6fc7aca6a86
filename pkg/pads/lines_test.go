package pads

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignificantLines(t *testing.T) {
	input := "// header comment\n*PADS-PCB*\n\n   \n  *PART*  \r\n\tU1 DIP14\n  // indented comment\nR1 0805"

	type numbered struct {
		Num  int
		Text string
	}
	var got []numbered
	for num, line := range significantLines(input) {
		got = append(got, numbered{num, line})
	}

	want := []numbered{
		{2, "*PADS-PCB*"},
		{5, "*PART*"},
		{6, "U1 DIP14"},
		{8, "R1 0805"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSignificantLinesByteOrderMark(t *testing.T) {
	var got []string
	for num, line := range significantLines("\ufeff*PADS-PCB*\n\ufeffU1") {
		if num == 1 && line != "*PADS-PCB*" {
			t.Errorf("expected BOM to be dropped from line 1, got %q", line)
		}
		got = append(got, line)
	}
	// Only a leading mark is removed.
	if diff := cmp.Diff([]string{"*PADS-PCB*", "\ufeffU1"}, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSignificantLinesStopsEarly(t *testing.T) {
	count := 0
	for range significantLines("a\nb\nc\nd") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 lines, got %d", count)
	}
}

func TestPhysicalLineCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"a", 1},
		{"a\n", 2},
		{"a\nb\nc", 3},
		{"a\nb\nc\n", 4},
	}

	for _, tt := range tests {
		if got := physicalLineCount(tt.input); got != tt.want {
			t.Errorf("physicalLineCount(%q) = %d, expected %d", tt.input, got, tt.want)
		}
	}
}

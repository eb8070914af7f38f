package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "HEX"})
	table.AddRow([]string{"Base", "#4F46E5"})
	table.AddRow([]string{"Complement 1", "#DDE548"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("separator missing: %q", lines[1])
	}
	// Columns align on the widest cell.
	if !strings.Contains(lines[2], "Base          #4F46E5") {
		t.Errorf("row not aligned: %q", lines[2])
	}
}

func TestTableShortRowPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("row dropped: %q", out)
	}
}

func TestTableIgnoresEscapeSequencesForWidth(t *testing.T) {
	table := NewTable([]string{"", "HEX"})
	table.AddRow([]string{"\x1b[48;2;79;70;229m  \x1b[0m", "#4F46E5"})
	table.AddRow([]string{"xx", "#000000"})

	out := table.Render()
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		stripped := ansiSeq.ReplaceAllString(line, "")
		if idx := strings.Index(stripped, "#"); idx >= 0 && idx != 4 {
			t.Errorf("hex column misaligned at %d: %q", idx, line)
		}
	}
}

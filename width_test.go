package vt102

import "testing"

func TestFoldToNarrowFullwidthLatin(t *testing.T) {
	if got := foldToNarrow('Ａ'); got != 'A' {
		t.Errorf("got %q, want 'A'", got)
	}
}

func TestFoldToNarrowLeavesOrdinaryRunesAlone(t *testing.T) {
	if got := foldToNarrow('x'); got != 'x' {
		t.Errorf("got %q, want 'x'", got)
	}
	if got := foldToNarrow('─'); got != '─' {
		t.Errorf("got %q, want '─'", got)
	}
}

func TestPrintFoldsFullwidthGlyphToOneColumn(t *testing.T) {
	p, s := newAttachedPair(1, 3)
	if err := p.Process("Ａ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _, ok := s.Cell(0, 0)
	if !ok || r != 'A' {
		t.Errorf("got %q, want 'A' folded from fullwidth form", r)
	}
	x, _ := s.Cursor()
	if x != 1 {
		t.Errorf("cursor advanced %d columns, want 1", x)
	}
}

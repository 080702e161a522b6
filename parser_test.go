package vt102

import "testing"

func TestParserDispatchesC0Events(t *testing.T) {
	var got []EventKind
	p := NewParser()
	for _, kind := range []EventKind{
		EventBackspace, EventTab, EventLinefeed, EventCarriageReturn,
		EventShiftIn, EventShiftOut, EventBell,
	} {
		kind := kind
		p.AddEventListener(kind, func(Event) { got = append(got, kind) })
	}

	if err := p.Process("\x08\x09\x0a\x0d\x0f\x0e\x07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []EventKind{
		EventBackspace, EventTab, EventLinefeed, EventCarriageReturn,
		EventShiftIn, EventShiftOut, EventBell,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParserVTAndFFMapToLinefeed(t *testing.T) {
	count := 0
	p := NewParser()
	p.AddEventListener(EventLinefeed, func(Event) { count++ })

	if err := p.Process("\x0b\x0c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 linefeed events, got %d", count)
	}
}

func TestParserNULIsIgnored(t *testing.T) {
	var got []EventKind
	p := NewParser()
	p.AddEventListener(EventPrint, func(e Event) { got = append(got, EventPrint) })

	if err := p.Process("\x00a\x00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 print event, got %d", len(got))
	}
}

// TestParserCursorDown checks that a NUL followed by "ESC [ 5 B"
// dispatches cursor-down with argument 5 exactly once, and that the
// parser returns to the stream state afterward.
func TestParserCursorDown(t *testing.T) {
	var events []Event
	p := NewParser()
	p.AddEventListener(EventCursorDown, func(e Event) { events = append(events, e) })

	if err := p.Process("\x00\x1b[5" + string(rune(0x42))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected exactly 1 cursor-down event, got %d", len(events))
	}
	if len(events[0].Args) != 1 || events[0].Args[0] != 5 {
		t.Errorf("expected args [5], got %v", events[0].Args)
	}

	// Parser state returned to stream: plain text after the CSI should
	// dispatch print events, not be swallowed as CSI continuation.
	var prints []rune
	p.AddEventListener(EventPrint, func(e Event) { prints = append(prints, e.Rune) })
	if err := p.Process("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prints) != 1 || prints[0] != 'x' {
		t.Errorf("expected parser back in stream state printing 'x', got %v", prints)
	}
}

func TestParserCSIMultipleParams(t *testing.T) {
	var got Event
	p := NewParser()
	p.AddEventListener(EventCursorMove, func(e Event) { got = e })

	if err := p.Process("\x1b[12;34H"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Args) != 2 || got.Args[0] != 12 || got.Args[1] != 34 {
		t.Errorf("expected args [12 34], got %v", got.Args)
	}
}

func TestParserCUPAndHVPShareEvent(t *testing.T) {
	count := 0
	p := NewParser()
	p.AddEventListener(EventCursorMove, func(Event) { count++ })

	if err := p.Process("\x1b[1;1H\x1b[2;2f"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 cursor-move events, got %d", count)
	}
}

func TestParserEscapeFinalEvents(t *testing.T) {
	var got []EventKind
	p := NewParser()
	for _, kind := range []EventKind{
		EventStoreCursor, EventRestoreCursor, EventIndex, EventLinefeed,
		EventReverseLinefeed, EventReverseIndex,
	} {
		kind := kind
		p.AddEventListener(kind, func(Event) { got = append(got, kind) })
	}

	// DECSC DECRC IND NEL RLF RI
	if err := p.Process("\x1b7\x1b8\x1bD\x1bE\x1bI\x1bM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []EventKind{
		EventStoreCursor, EventRestoreCursor, EventIndex, EventLinefeed,
		EventReverseLinefeed, EventReverseIndex,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// TestParserCUBAndINDShareByteButNotState verifies CUB (CSI 0x44) and
// IND (bare-escape 0x44) are resolved by parser state, not byte alone.
func TestParserCUBAndINDShareByteButNotState(t *testing.T) {
	var gotIndex, gotCursorLeft int
	p := NewParser()
	p.AddEventListener(EventIndex, func(Event) { gotIndex++ })
	p.AddEventListener(EventCursorLeft, func(Event) { gotCursorLeft++ })

	if err := p.Process("\x1bD"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Process("\x1b[3D"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotIndex != 1 {
		t.Errorf("expected 1 index event, got %d", gotIndex)
	}
	if gotCursorLeft != 1 {
		t.Errorf("expected 1 cursor-left event, got %d", gotCursorLeft)
	}
}

func TestParserUnknownEscapeFailsWhenConfigured(t *testing.T) {
	p := NewParser(WithFailOnUnknownEscape(true))
	err := p.Process("\x1bQ")
	var spe *StreamProcessError
	if err == nil {
		t.Fatal("expected an error for an unknown escape")
	}
	if e, ok := err.(*StreamProcessError); !ok {
		t.Fatalf("expected *StreamProcessError, got %T", err)
	} else {
		spe = e
	}
	if spe.Rune != 'Q' {
		t.Errorf("expected offending rune 'Q', got %q", spe.Rune)
	}
}

func TestParserUnknownEscapeSilentWhenNotConfigured(t *testing.T) {
	p := NewParser(WithFailOnUnknownEscape(false))
	if err := p.Process("\x1bQx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var prints []rune
	p.AddEventListener(EventPrint, func(e Event) { prints = append(prints, e.Rune) })
	if err := p.Process("y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prints) != 1 || prints[0] != 'y' {
		t.Errorf("expected parser recovered to stream state, got %v", prints)
	}
}

func TestParserRecordingProvider(t *testing.T) {
	rec := &recordingSpy{}
	p := NewParser(WithRecording(rec))
	if err := p.Process("ab"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(rec.bytes) != "ab" {
		t.Errorf("expected recorded bytes 'ab', got %q", rec.bytes)
	}
}

type recordingSpy struct {
	bytes []byte
}

func (r *recordingSpy) Record(b byte) {
	r.bytes = append(r.bytes, b)
}

func TestParserApplyingConcatenationEqualsSequential(t *testing.T) {
	a, b := "Hello, \x1b[31m", "World\x1b[0m!"

	var combined []rune
	p1 := NewParser()
	p1.AddEventListener(EventPrint, func(e Event) { combined = append(combined, e.Rune) })
	if err := p1.Process(a + b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sequential []rune
	p2 := NewParser()
	p2.AddEventListener(EventPrint, func(e Event) { sequential = append(sequential, e.Rune) })
	if err := p2.Process(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p2.Process(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(combined) != string(sequential) {
		t.Errorf("got %q, want %q", string(sequential), string(combined))
	}
}

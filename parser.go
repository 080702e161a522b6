package vt102

import (
	"fmt"
	"strconv"
	"strings"
)

// parserState is the Parser's explicit state, one exhaustive handler
// per value instead of ad-hoc boolean flags.
type parserState int

const (
	stateStream parserState = iota
	stateEscape
	stateEscapeLB
	stateMode
	stateCharsetG0
	stateCharsetG1
)

// c0Events maps a C0 control byte to the event it dispatches directly
// from the stream state. NUL and ESC are handled outside this table:
// NUL is ignored, ESC starts an escape sequence.
var c0Events = map[byte]EventKind{
	cBS:  EventBackspace,
	cHT:  EventTab,
	cLF:  EventLinefeed,
	cVT:  EventLinefeed,
	cFF:  EventLinefeed,
	cCR:  EventCarriageReturn,
	cSI:  EventShiftIn,
	cSO:  EventShiftOut,
	cBEL: EventBell,
}

// escFinalEvents maps a bare-escape final byte to the event it
// dispatches. NEL maps to the same event as LF/VT/FF.
var escFinalEvents = map[byte]EventKind{
	escDECSC: EventStoreCursor,
	escDECRC: EventRestoreCursor,
	escIND:   EventIndex,
	escNEL:   EventLinefeed,
	escRLF:   EventReverseLinefeed,
	escRI:    EventReverseIndex,
}

// csiFinalEvents maps a CSI final byte to the event it dispatches. CUP
// and HVP share the cursor-move event; CUB (0x44) and IND (0x44) share
// a byte value but are resolved by parser state, never by byte alone.
var csiFinalEvents = map[byte]EventKind{
	csiCUU:     EventCursorUp,
	csiCUD:     EventCursorDown,
	csiCUF:     EventCursorRight,
	csiCUB:     EventCursorLeft,
	csiCUP:     EventCursorMove,
	csiED:      EventEraseInDisplay,
	csiEL:      EventEraseInLine,
	csiIL:      EventInsertLines,
	csiDL:      EventDeleteLines,
	csiDCH:     EventDeleteCharacters,
	csiHVP:     EventCursorMove,
	csiIRMI:    EventSetInsert,
	csiIRMR:    EventSetReplace,
	csiSGR:     EventSelectGraphicRendition,
	csiDECSTBM: EventSetMargins,
}

// StreamProcessError reports an unrecognized escape sequence when the
// parser is configured to fail rather than silently recover.
type StreamProcessError struct {
	Rune rune
	Code uint32
}

func (e *StreamProcessError) Error() string {
	return fmt.Sprintf("vt102: unknown escape %q (0x%x)", e.Rune, e.Code)
}

// Parser is a byte-driven state machine that decodes the VT1xx
// protocol into semantic events and dispatches them to registered
// listeners. It knows nothing about Screen; a Screen registers its own
// handlers via Attach.
type Parser struct {
	state               parserState
	params              []int
	currentParam        strings.Builder
	listeners           map[EventKind][]func(Event)
	failOnUnknownEscape bool
	recording           RecordingProvider
}

// ParserOption configures a Parser during construction.
type ParserOption func(*Parser)

// WithFailOnUnknownEscape controls whether an unrecognized bare-escape
// final byte raises a *StreamProcessError (true, the default) or is
// silently dropped back to the stream state (false).
func WithFailOnUnknownEscape(fail bool) ParserOption {
	return func(p *Parser) {
		p.failOnUnknownEscape = fail
	}
}

// WithRecording sets a provider that receives every raw byte before it
// is parsed, for replay or debugging.
func WithRecording(r RecordingProvider) ParserOption {
	return func(p *Parser) {
		p.recording = r
	}
}

// NewParser creates a Parser in the stream state. By default it fails
// on an unrecognized escape sequence.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		listeners:           make(map[EventKind][]func(Event)),
		recording:           NoopRecording{},
		failOnUnknownEscape: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddEventListener registers fn to be invoked, in registration order,
// every time kind is dispatched. More than one listener may be
// registered for the same kind.
func (p *Parser) AddEventListener(kind EventKind, fn func(Event)) {
	p.listeners[kind] = append(p.listeners[kind], fn)
}

// dispatch invokes every listener registered for ev.Kind, in
// registration order. A panicking listener is not recovered here; it
// propagates to the caller of Consume/Process, aborting any remaining
// listeners for this event.
func (p *Parser) dispatch(ev Event) {
	for _, fn := range p.listeners[ev.Kind] {
		fn(ev)
	}
}

// Consume advances the parser by exactly one input byte.
func (p *Parser) Consume(b byte) error {
	p.recording.Record(b)

	switch p.state {
	case stateStream:
		return p.consumeStream(b)
	case stateEscape:
		return p.consumeEscape(b)
	case stateEscapeLB:
		return p.consumeEscapeLB(b)
	case stateMode:
		p.consumeMode(b)
		return nil
	case stateCharsetG0:
		p.dispatch(Event{Kind: EventCharsetG0, Rune: rune(b)})
		p.state = stateStream
		return nil
	case stateCharsetG1:
		p.dispatch(Event{Kind: EventCharsetG1, Rune: rune(b)})
		p.state = stateStream
		return nil
	default:
		p.state = stateStream
		return nil
	}
}

// Process calls Consume on every byte of s in order, stopping at the
// first error. The parser's state is left recoverable (reset to
// stream) even when an error aborts the call, so a subsequent Process
// call is not corrupted.
func (p *Parser) Process(s string) error {
	return p.ProcessBytes([]byte(s))
}

// ProcessBytes calls Consume on every byte in b in order, stopping at
// the first error.
func (p *Parser) ProcessBytes(b []byte) error {
	for _, c := range b {
		if err := p.Consume(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) consumeStream(b byte) error {
	switch {
	case b == cNUL:
		return nil
	case b == cESC:
		p.state = stateEscape
		return nil
	default:
		if kind, ok := c0Events[b]; ok {
			p.dispatch(Event{Kind: kind})
			return nil
		}
		p.dispatch(Event{Kind: EventPrint, Rune: rune(b)})
		return nil
	}
}

func (p *Parser) consumeEscape(b byte) error {
	switch b {
	case '[':
		p.state = stateEscapeLB
		p.params = nil
		p.currentParam.Reset()
		return nil
	case '(':
		p.state = stateCharsetG0
		return nil
	case ')':
		p.state = stateCharsetG1
		return nil
	default:
		if kind, ok := escFinalEvents[b]; ok {
			p.dispatch(Event{Kind: kind})
			p.state = stateStream
			return nil
		}
		p.state = stateStream
		if p.failOnUnknownEscape {
			return &StreamProcessError{Rune: rune(b), Code: uint32(b)}
		}
		return nil
	}
}

func (p *Parser) consumeEscapeLB(b byte) error {
	switch {
	case b >= '0' && b <= '9':
		p.currentParam.WriteByte(b)
		return nil
	case b == ';':
		p.pushCurrentParam()
		return nil
	case b == '?':
		p.state = stateMode
		return nil
	default:
		p.pushCurrentParam()
		if kind, ok := csiFinalEvents[b]; ok {
			p.dispatch(Event{Kind: kind, Args: p.params})
		}
		p.state = stateStream
		p.params = nil
		p.currentParam.Reset()
		return nil
	}
}

func (p *Parser) consumeMode(b byte) {
	if b == 'l' || b == 'h' {
		p.state = stateStream
	}
}

// pushCurrentParam flushes the digit accumulator into params, if any
// digits were accumulated.
func (p *Parser) pushCurrentParam() {
	if p.currentParam.Len() == 0 {
		return
	}
	n, err := strconv.Atoi(p.currentParam.String())
	if err == nil {
		p.params = append(p.params, n)
	}
	p.currentParam.Reset()
}

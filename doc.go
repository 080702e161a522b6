// Package vt102 provides a headless VT100/VT102-compatible terminal
// emulator core.
//
// It consumes a byte/character stream containing printable text
// intermixed with C0 control codes and ANSI/DEC escape sequences, and
// maintains a two-dimensional screen buffer that mirrors what a
// physical terminal would display. Primary uses are screen-scraping
// programmatic terminal output and serving as the core of a graphical
// terminal emulator.
//
// # Quick Start
//
// Create a parser and a screen, attach the screen to the parser, and
// feed it bytes:
//
//	p := vt102.NewParser()
//	s := vt102.NewScreen(vt102.WithSize(24, 80))
//	s.Attach(p)
//
//	p.Process("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(s.Display()[0]) // "Hello World!" padded with spaces to 80 columns
//
// # Architecture
//
// The package is organized around two tightly coupled subsystems:
//
//   - [Parser]: a byte-driven state machine that decodes the VT1xx
//     protocol into semantic events.
//   - [Screen]: a grid of cells with a cursor, tab stops, a saved-cursor
//     stack, and a handler for every event the parser can emit.
//
// The Parser knows nothing about Screen; it only dispatches named
// events to registered listeners. [Screen.Attach] registers one
// handler per event the parser emits, so multiple screens (or a
// caller's own listeners) may observe the same parser.
//
// # Cells and Attributes
//
// Each screen cell is a rune plus a [CellAttribute]: a set of
// [TextStyle] tokens and a foreground/background [Color]. Attributes
// are value types — never mutate one reached through [Screen.Attributes];
// replace it instead.
//
// # Decoding
//
// Screen decodes incoming bytes as UTF-8 by default, using the standard
// library. Bytes that fail to decode are rendered as '?'. Use
// [WithDecoder] to plug in a [golang.org/x/text/encoding] encoding
// instead, such as the legacy single-byte charmap.ISO8859_1.
//
// # Providers
//
// Providers handle side effects triggered by the stream. Both are
// optional and default to no-ops:
//
//   - [BellProvider]: handles BEL (0x07) events.
//   - [RecordingProvider]: captures raw bytes before they are parsed,
//     for replay or debugging.
//
// # Middleware
//
// [Middleware] intercepts Screen's event handlers, letting a caller
// observe or suppress a handler call without forking the library:
//
//	mw := &vt102.Middleware{
//	    Print: func(r rune, next func(rune)) {
//	        log.Printf("print %q", r)
//	        next(r)
//	    },
//	}
//	s := vt102.NewScreen(vt102.WithMiddleware(mw))
//
// # Thread Safety
//
// The core is single-threaded and synchronous: Consume/Process never
// block and dispatch events inline. Concurrent use from multiple
// goroutines requires external locking; [CellAttribute] values are
// immutable and therefore safe to share.
//
// # Non-goals
//
// No VT220+ features (256-color palettes, mouse reporting), no
// bidi/double-width glyph rendering, no scrollback history beyond the
// live grid, no terminfo/termcap negotiation.
package vt102

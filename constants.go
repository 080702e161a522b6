package vt102

// C0 control codes recognized directly from the stream state.
const (
	cNUL = 0x00
	cBEL = 0x07
	cBS  = 0x08
	cHT  = 0x09
	cLF  = 0x0a
	cVT  = 0x0b
	cFF  = 0x0c
	cCR  = 0x0d
	cSO  = 0x0e
	cSI  = 0x0f
	cESC = 0x1b
)

// Escape-final bytes recognized in the bare-escape state (ESC <byte>).
const (
	escDECSC = 0x37 // store-cursor
	escDECRC = 0x38 // restore-cursor
	escIND   = 0x44 // index
	escNEL   = 0x45 // linefeed
	escRLF   = 0x49 // reverse-linefeed
	escRI    = 0x4d // reverse-index
)

// CSI-final bytes recognized after ESC [ and optional ;-separated
// decimal parameters.
const (
	csiCUU     = 0x41 // cursor-up
	csiCUD     = 0x42 // cursor-down
	csiCUF     = 0x43 // cursor-right
	csiCUB     = 0x44 // cursor-left
	csiCUP     = 0x48 // cursor-move
	csiED      = 0x4a // erase-in-display
	csiEL      = 0x4b // erase-in-line
	csiIL      = 0x4c // insert-lines
	csiDL      = 0x4d // delete-lines
	csiDCH     = 0x50 // delete-characters
	csiHVP     = 0x66 // cursor-move
	csiIRMI    = 0x68 // set-insert
	csiIRMR    = 0x6c // set-replace
	csiSGR     = 0x6d // select-graphic-rendition
	csiDECSTBM = 0x72 // set-margins
)

// SGR text-style codes. *-off codes remove the corresponding token from
// cursorAttributes.Styles; the positive codes add it.
const (
	sgrReset        = 0
	sgrBold         = 1
	sgrDim          = 2
	sgrUnderline    = 4
	sgrBlink        = 5
	sgrReverse      = 7
	sgrUnderlineOff = 24
	sgrBlinkOff     = 25
	sgrReverseOff   = 27
)

// SGR foreground/background color code ranges. Both 38 and 39 reset
// the foreground to default; only 49 resets the background.
const (
	sgrFgBase    = 30
	sgrFgDefault = 38
	sgrFgReset   = 39
	sgrBgBase    = 40
	sgrBgReset   = 49
)

// clearTabStop type bytes (mirrors the CSI final-byte vocabulary but is
// carried as a parameter, not a final byte).
const (
	tabClearCurrent = 0x30
	tabClearAll     = 0x33
)

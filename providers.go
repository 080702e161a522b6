package vt102

// BellProvider handles BEL (0x07) events dispatched by the parser.
type BellProvider interface {
	// Ring is called once per bell byte consumed.
	Ring()
}

// NoopBell ignores bell events. It is the default when no BellProvider
// is configured.
type NoopBell struct{}

// Ring implements BellProvider by doing nothing.
func (NoopBell) Ring() {}

// RecordingProvider captures raw bytes before they reach the parser's
// state machine, for replay or debugging.
type RecordingProvider interface {
	// Record is called with every byte passed to Parser.Consume,
	// before it is interpreted.
	Record(b byte)
}

// NoopRecording discards every byte. It is the default when no
// RecordingProvider is configured.
type NoopRecording struct{}

// Record implements RecordingProvider by doing nothing.
func (NoopRecording) Record(b byte) {}

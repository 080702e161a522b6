package vt102

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// decodeState is the byte-to-glyph decoder described in the data
// model: Screen owns one, fed one raw byte at a time by the print
// handler, and reassembles multi-byte sequences across Consume calls.
// A nil enc means UTF-8, decoded directly with the standard library
// since Go source text is already UTF-8; any other encoding.Encoding
// (e.g. charmap.ISO8859_1) is driven through its x/text Decoder.
type decodeState struct {
	enc encoding.Encoding
	dec *encoding.Decoder
	buf []byte
}

// newDecodeState builds a decoder for enc. Passing nil selects UTF-8.
func newDecodeState(enc encoding.Encoding) *decodeState {
	ds := &decodeState{enc: enc}
	if enc != nil {
		ds.dec = enc.NewDecoder()
	}
	return ds
}

// push feeds one raw byte into the decoder. ok is false while the
// decoder is still waiting on continuation bytes for a multi-byte
// sequence; once a glyph resolves, ok is true and r is the decoded
// rune, or '?' if the accumulated bytes were not valid in this
// encoding (DecodeError, never surfaced to the caller).
func (d *decodeState) push(b byte) (r rune, ok bool) {
	d.buf = append(d.buf, b)

	if d.dec == nil {
		if !utf8.FullRune(d.buf) {
			return 0, false
		}
		r, size := utf8.DecodeRune(d.buf)
		d.buf = d.buf[size:]
		if r == utf8.RuneError && size <= 1 {
			d.buf = nil
			return '?', true
		}
		return r, true
	}

	dst := make([]byte, 8)
	nDst, nSrc, err := d.dec.Transform(dst, d.buf, false)
	switch {
	case err == transform.ErrShortSrc:
		return 0, false
	case err != nil || nDst == 0:
		d.buf = nil
		return '?', true
	default:
		r, _ := utf8.DecodeRune(dst[:nDst])
		d.buf = d.buf[nSrc:]
		return r, true
	}
}

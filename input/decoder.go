// Package input decodes the raw byte stream from a terminal in raw
// mode into logical key events.
//
// The only ambiguity in the stream is the escape byte: a bare Escape
// press produces 0x1B and nothing else, while a function key produces
// 0x1B '[' and one or more final bytes, all delivered together. The
// decoder resolves this with a single non-blocking probe after each
// escape byte, so it never waits on a timer and never blocks once a
// byte has been consumed.
package input

// KeyType identifies a decoded key event.
type KeyType int

const (
	// KeyRune is a printable character; Key.Rune holds it.
	KeyRune KeyType = iota
	// KeyControl is an unmapped C0 control byte; Key.Byte holds it.
	KeyControl
	// KeyUnrecognized is a byte or CSI final the decoder has no
	// mapping for; Key.Byte holds it.
	KeyUnrecognized
	// KeyIncomplete means an escape sequence was cut short; callers
	// treat it as "no event yet".
	KeyIncomplete

	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyInterrupt
	KeyEndOfInput
)

// Key is a single decoded key event.
type Key struct {
	Type KeyType
	Rune rune
	Byte byte
}

// ByteSource is the terminal capability the decoder reads from.
// ReadByte blocks until a byte arrives or the stream ends; TryReadByte
// returns immediately, reporting false when nothing is buffered.
type ByteSource interface {
	ReadByte() (byte, error)
	TryReadByte() (byte, bool)
}

// Decoder turns a ByteSource into a stream of key events.
type Decoder struct {
	src      ByteSource
	pushback byte
	queued   bool
}

// NewDecoder creates a decoder over the given byte source.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// csiFinal maps the byte following ESC '[' to a key. Keys encoded as
// "ESC [ n ~" are looked up by their parameter digit once the tilde
// confirms the form.
var csiFinal = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'2': KeyInsert,
	'3': KeyDelete,
	'5': KeyPageUp,
	'6': KeyPageDown,
}

// Next decodes and returns one key event. It blocks on the first byte
// only; escape-sequence continuation bytes are probed without
// blocking. A closed input stream yields KeyEndOfInput.
func (d *Decoder) Next() Key {
	var b byte
	if d.queued {
		b = d.pushback
		d.queued = false
	} else {
		var err error
		b, err = d.src.ReadByte()
		if err != nil {
			return Key{Type: KeyEndOfInput}
		}
	}

	if b != 0x1b {
		return mapByte(b)
	}

	// Escape byte: probe for a continuation. Nothing buffered means
	// the user pressed the Escape key itself.
	next, ok := d.src.TryReadByte()
	if !ok {
		return Key{Type: KeyEscape}
	}
	if next != '[' {
		// Not a CSI; the byte belongs to the next event.
		d.pushback = next
		d.queued = true
		return Key{Type: KeyEscape}
	}

	b1, ok := d.src.TryReadByte()
	if !ok {
		return Key{Type: KeyIncomplete}
	}
	if isCSIFinal(b1) {
		if key, known := csiFinal[b1]; known {
			return Key{Type: key}
		}
		return Key{Type: KeyUnrecognized, Byte: b1}
	}

	// Parameter byte; consume the sequence through its final byte so
	// later key events are untouched. Only the tilde forms are mapped,
	// keyed on the first parameter.
	param := b1
	for {
		b, more := d.src.TryReadByte()
		if !more {
			return Key{Type: KeyIncomplete}
		}
		if !isCSIFinal(b) {
			continue
		}
		if b == '~' {
			if key, known := csiFinal[param]; known {
				return Key{Type: key}
			}
		}
		return Key{Type: KeyUnrecognized, Byte: param}
	}
}

// isCSIFinal reports whether b terminates a CSI sequence. Parameter and
// intermediate bytes occupy 0x20..0x3F; the first byte at or above 0x40
// ends the sequence.
func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// mapByte translates a single non-escape byte.
func mapByte(b byte) Key {
	switch {
	case b == '\n' || b == '\r' || b == 0x04:
		return Key{Type: KeyEnter}
	case b == '\t':
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x03:
		return Key{Type: KeyInterrupt}
	case b >= 0x20 && b < 0x7f:
		return Key{Type: KeyRune, Rune: rune(b)}
	case b < 0x20:
		return Key{Type: KeyControl, Byte: b}
	}
	return Key{Type: KeyUnrecognized, Byte: b}
}

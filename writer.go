package ebml

import (
	"io"
	"math"
)

// Writer is a streaming, push-based EBML encoder (C7). Unlike Reader,
// it needs no compiled schema: a Value already carries its own tag id
// and payload shape, and a schema's only role is giving those ids and
// shapes meaning, which writing doesn't require. Writer can therefore
// serialize any Value, including RawTag ones, regardless of which
// schema (if any) produced them.
type Writer struct {
	dest     io.Writer
	openTags []openFrame
	buf      []byte
}

type openFrame struct {
	id      uint64
	start   int
	unknown bool
}

// WriterOption configures a Writer at construction time.
type WriterOption func(*Writer)

// WithWriterBufferHint preallocates the writer's working buffer to n
// bytes, avoiding growth-copies for callers who know roughly how large
// their first flush cycle will be.
func WithWriterBufferHint(n int) WriterOption {
	return func(w *Writer) {
		if n > 0 {
			w.buf = make([]byte, 0, n)
		}
	}
}

// NewWriter builds a Writer over dest.
func NewWriter(dest io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{dest: dest}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write appends v to the stream. A Master::Start value opens a nested
// frame whose size is backpatched once its matching Master::End
// arrives; Master::End closes the innermost open frame, which must
// match it by id; Master::Full recursively writes a Start, every
// child, then an End in a single call. Any other value writes its
// encoded payload under a freshly finalized header.
func (w *Writer) Write(v Value) error {
	m, isMaster := v.AsMaster()
	if !isMaster {
		return w.writeScalar(v)
	}

	switch m.Kind {
	case MasterStart:
		w.startTag(v.ID())
		return nil
	case MasterEnd:
		return w.endTag(v.ID())
	case MasterFull:
		w.startTag(v.ID())
		for _, child := range m.Children {
			if err := w.Write(child); err != nil {
				return err
			}
		}
		return w.endTag(v.ID())
	default:
		return &TagSizeError{Message: "unrecognized master kind"}
	}
}

// WriteUnknownSizeStart opens a master frame whose header declares an
// Unknown size up front (the all-ones marker), rather than one
// backpatched with a known length once its children are written. The
// id is not checked against any schema: whatever id is given is opened
// as a master frame, and only an id that is not a valid vint is
// rejected (with *TagIDError).
func (w *Writer) WriteUnknownSizeStart(id uint64) error {
	idBytes, err := idToBytes(id)
	if err != nil {
		return &TagIDError{TagID: id}
	}
	sizeBytes := unknownSizeMarker()

	w.openTags = append(w.openTags, openFrame{id: id, start: len(w.buf), unknown: true})
	w.buf = append(w.buf, idBytes...)
	w.buf = append(w.buf, sizeBytes...)
	return nil
}

// Flush closes every still-open frame in reverse-push (innermost
// first) order and writes any buffered bytes to dest. Known-size frames
// closed this way backpatch their size from however much content was
// written since they were opened.
func (w *Writer) Flush() error {
	for len(w.openTags) > 0 {
		top := w.openTags[len(w.openTags)-1]
		if err := w.endTag(top.id); err != nil {
			return err
		}
	}
	return w.flushBuffer()
}

func (w *Writer) startTag(id uint64) {
	w.openTags = append(w.openTags, openFrame{id: id, start: len(w.buf)})
}

func (w *Writer) endTag(id uint64) error {
	if len(w.openTags) == 0 {
		return &UnexpectedClosingTag{TagID: id}
	}

	top := w.openTags[len(w.openTags)-1]
	if top.id != id {
		expected := top.id
		return &UnexpectedClosingTag{TagID: id, ExpectedID: &expected}
	}
	w.openTags = w.openTags[:len(w.openTags)-1]

	if top.unknown {
		return w.flushIfDrained()
	}

	size := uint64(len(w.buf) - top.start)
	return w.finalizeTag(id, top.start, size)
}

func (w *Writer) writeScalar(v Value) error {
	start := len(w.buf)

	switch v.Type() {
	case UnsignedInt:
		val, _ := v.AsUnsignedInt()
		w.buf = append(w.buf, encodeMinimalUint(val)...)
	case Integer:
		val, _ := v.AsInteger()
		w.buf = append(w.buf, encodeMinimalInt(val)...)
	case Utf8:
		val, _ := v.AsUtf8()
		w.buf = append(w.buf, []byte(val)...)
	case Binary:
		val, _ := v.AsBinary()
		w.buf = append(w.buf, val...)
	case Float:
		val, _ := v.AsFloat()
		w.buf = append(w.buf, encodeFloat64(val)...)
	default:
		return &TagSizeError{Message: "cannot write a Master value as a scalar"}
	}

	size := uint64(len(w.buf) - start)
	return w.finalizeTag(v.ID(), start, size)
}

// finalizeTag splices id and size, encoded as vints, into the working
// buffer immediately before the payload bytes already written at start,
// then flushes to dest if no Known-size frame remains open.
func (w *Writer) finalizeTag(id uint64, start int, size uint64) error {
	idBytes, err := idToBytes(id)
	if err != nil {
		return err
	}
	sizeBytes, err := EncodeUnsigned(size, 0)
	if err != nil {
		return &TagSizeError{Message: err.Error()}
	}

	header := append(idBytes, sizeBytes...)
	w.buf = insertAt(w.buf, start, header)

	return w.flushIfDrained()
}

// flushIfDrained flushes the working buffer to dest unless a Known-size
// frame is still open. A still-open Unknown-size frame never blocks a
// flush: its header has already been written eagerly, so there is
// nothing left to backpatch once content destined for it reaches dest.
func (w *Writer) flushIfDrained() error {
	for _, f := range w.openTags {
		if !f.unknown {
			return nil
		}
	}
	return w.flushBuffer()
}

func (w *Writer) flushBuffer() error {
	if len(w.buf) == 0 {
		return nil
	}
	if _, err := w.dest.Write(w.buf); err != nil {
		return newWriteError(err)
	}
	w.buf = w.buf[:0]
	if f, ok := w.dest.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return newWriteError(err)
		}
	}
	return nil
}

func insertAt(buf []byte, at int, insert []byte) []byte {
	out := make([]byte, 0, len(buf)+len(insert))
	out = append(out, buf[:at]...)
	out = append(out, insert...)
	out = append(out, buf[at:]...)
	return out
}

// idToBytes renders id as the minimal big-endian byte sequence that
// reproduces its original vint encoding: ids are stored with their
// width-marker bit already set, so stripping leading zero bytes from
// the full 8-byte representation yields back exactly those bytes.
func idToBytes(id uint64) ([]byte, error) {
	if id == 0 {
		return nil, &TagIDError{TagID: id}
	}
	var full [8]byte
	v := id
	for i := 7; i >= 0; i-- {
		full[i] = byte(v)
		v >>= 8
	}
	i := 0
	for i < 7 && full[i] == 0 {
		i++
	}
	out := make([]byte, 8-i)
	copy(out, full[i:])
	return out, nil
}

func unknownSizeMarker() []byte {
	return []byte{0xFF}
}

// encodeMinimalUint picks the smallest of 1/2/4/8 bytes that holds val.
func encodeMinimalUint(val uint64) []byte {
	switch {
	case val <= 0xFF:
		return []byte{byte(val)}
	case val <= 0xFFFF:
		return []byte{byte(val >> 8), byte(val)}
	case val <= 0xFFFFFFFF:
		return []byte{byte(val >> 24), byte(val >> 16), byte(val >> 8), byte(val)}
	default:
		return []byte{
			byte(val >> 56), byte(val >> 48), byte(val >> 40), byte(val >> 32),
			byte(val >> 24), byte(val >> 16), byte(val >> 8), byte(val),
		}
	}
}

// encodeMinimalInt picks the smallest of 1/2/4/8 bytes that holds val
// in two's complement.
func encodeMinimalInt(val int64) []byte {
	switch {
	case val >= -128 && val <= 127:
		return []byte{byte(val)}
	case val >= -32768 && val <= 32767:
		u := uint16(val)
		return []byte{byte(u >> 8), byte(u)}
	case val >= -2147483648 && val <= 2147483647:
		u := uint32(val)
		return []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	default:
		u := uint64(val)
		return []byte{
			byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
			byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
		}
	}
}

// encodeFloat64 always writes the full 8-byte IEEE-754 double
// representation.
func encodeFloat64(val float64) []byte {
	bits := math.Float64bits(val)
	return []byte{
		byte(bits >> 56), byte(bits >> 48), byte(bits >> 40), byte(bits >> 32),
		byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits),
	}
}

package ebml

import (
	"io"
	"unicode/utf8"
)

const defaultInitialBufferSize = 64 * 1024

// Event pairs a decoded tag value with the byte offset of its tag id.
// The offset is always the position of the first byte of the event's
// tag id, even for Master::End events (which report the offset of
// their Master::Start).
type Event struct {
	Value  Value
	Offset int64
}

// processingTag is what the reader keeps on its open-master stack: the
// element's id, its size classification, and the byte offsets where its
// id and body begin.
type processingTag struct {
	id        uint64
	size      EBMLSize
	tagStart  int64
	dataStart int64
}

// Reader is a streaming, pull-based EBML decoder (C6). Call Next
// repeatedly to drain the event sequence; Next returns io.EOF once the
// stream and the open-master stack are both exhausted.
type Reader struct {
	src      io.Reader
	compiled *Compiled

	buf       []byte
	bufLen    int
	pos       int
	bufOffset int64
	eof       bool
	finished  bool

	stack []processingTag
	queue []Event

	startHeuristicDone bool

	bufferAll              bool
	bufferSet              map[uint64]bool
	allowInvalidTagIDs     bool
	allowHierarchyProblems bool
	allowOversizedTags     bool
	maxTagSize             *uint64
}

// ReaderOption configures a Reader at construction time.
type ReaderOption func(*Reader)

// WithInitialBufferSize sets the reader's initial internal staging
// buffer size (default 64KiB).
func WithInitialBufferSize(n int) ReaderOption {
	return func(r *Reader) {
		if n > 0 {
			r.buf = make([]byte, n)
		}
	}
}

// WithBufferedMasters declares the set of master ids to materialize as
// Master::Full events rather than streamed Start/End pairs.
func WithBufferedMasters(ids ...uint64) ReaderOption {
	return func(r *Reader) {
		for _, id := range ids {
			r.bufferSet[id] = true
		}
	}
}

// WithBufferAllMasters materializes every master element as Full.
func WithBufferAllMasters() ReaderOption {
	return func(r *Reader) { r.bufferAll = true }
}

// WithAllowInvalidTagIDs emits RawTag for ids absent from the schema
// instead of failing with InvalidTagID.
func WithAllowInvalidTagIDs() ReaderOption {
	return func(r *Reader) { r.allowInvalidTagIDs = true }
}

// WithAllowHierarchyProblems skips the path-validator check.
func WithAllowHierarchyProblems() ReaderOption {
	return func(r *Reader) { r.allowHierarchyProblems = true }
}

// WithAllowOversizedTags skips the per-ancestor containment check.
func WithAllowOversizedTags() ReaderOption {
	return func(r *Reader) { r.allowOversizedTags = true }
}

// WithMaxTagSize configures a cutoff past which a declared size yields
// InvalidTagSize, independent of the other allowances.
func WithMaxTagSize(n uint64) ReaderOption {
	return func(r *Reader) { r.maxTagSize = &n }
}

// NewReader builds a Reader over src using the given compiled schema.
func NewReader(src io.Reader, compiled *Compiled, opts ...ReaderOption) *Reader {
	r := &Reader{
		src:       src,
		compiled:  compiled,
		buf:       make([]byte, defaultInitialBufferSize),
		bufferSet: make(map[uint64]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next tag event, or io.EOF once the stream and the
// open-master stack are both exhausted.
func (r *Reader) Next() (Event, error) {
	for len(r.queue) == 0 {
		if r.finished {
			return Event{}, io.EOF
		}
		if err := r.pump(); err != nil {
			r.finished = true
			return Event{}, err
		}
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return ev, nil
}

func (r *Reader) enqueue(v Value, offset int64) {
	r.queue = append(r.queue, Event{Value: v, Offset: offset})
}

func (r *Reader) absPos() int64 { return r.bufOffset + int64(r.pos) }

func (r *Reader) stackIDs() []uint64 {
	ids := make([]uint64, len(r.stack))
	for i, t := range r.stack {
		ids[i] = t.id
	}
	return ids
}

// compact slides unconsumed buffered bytes down to index 0 so the
// internal buffer doesn't grow without bound across a long stream.
func (r *Reader) compact() {
	if r.pos == 0 {
		return
	}
	if r.pos == r.bufLen {
		r.bufOffset += int64(r.pos)
		r.bufLen = 0
		r.pos = 0
		return
	}
	copy(r.buf, r.buf[r.pos:r.bufLen])
	r.bufLen -= r.pos
	r.bufOffset += int64(r.pos)
	r.pos = 0
}

func (r *Reader) ensureCapacity(n int) {
	needed := r.pos + n
	if needed <= len(r.buf) {
		return
	}
	newCap := len(r.buf) * 2
	if newCap < needed {
		newCap = needed
	}
	newBuf := make([]byte, newCap)
	copy(newBuf, r.buf[:r.bufLen])
	r.buf = newBuf
}

// ensureBuffered makes at least n bytes available starting at r.pos,
// reading from the source as needed. It never returns an error for
// ordinary EOF; callers compare r.bufLen-r.pos against n afterward to
// detect a short read.
func (r *Reader) ensureBuffered(n int) error {
	r.ensureCapacity(n)
	for r.bufLen-r.pos < n && !r.eof {
		read, err := r.src.Read(r.buf[r.bufLen:len(r.buf)])
		if read > 0 {
			r.bufLen += read
		}
		if err != nil {
			if err == io.EOF {
				r.eof = true
			} else {
				return newReadError(err)
			}
		} else if read == 0 {
			r.eof = true
		}
	}
	return nil
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// headerInfo is the decoded (but not yet consumed) id/size pair for the
// next tag in the stream.
type headerInfo struct {
	ID          uint64
	Size        EBMLSize
	TagStart    int64
	DataStart   int64
	HeaderWidth int
}

// peekHeader decodes the id and size vints at the current position
// without advancing it. It returns io.EOF if the stream has cleanly
// ended (no bytes at all), or *UnexpectedEOF if a header was partially
// present.
func (r *Reader) peekHeader() (*headerInfo, error) {
	tagStart := r.absPos()

	if err := r.ensureBuffered(16); err != nil {
		return nil, err
	}
	if r.bufLen-r.pos == 0 {
		return nil, io.EOF
	}

	idVal, idWidth, ok, err := DecodeUnsignedID(r.buf[r.pos:r.bufLen])
	if err != nil {
		return nil, &CorruptedFileData{Kind: InvalidTagData, Position: tagStart}
	}
	if !ok {
		return nil, &UnexpectedEOF{TagStart: tagStart, PartialData: copyBytes(r.buf[r.pos:r.bufLen])}
	}

	if err := r.ensureBuffered(idWidth + 8); err != nil {
		return nil, err
	}
	if r.bufLen-r.pos-idWidth == 0 {
		return nil, &UnexpectedEOF{TagStart: tagStart, TagID: &idVal, PartialData: copyBytes(r.buf[r.pos:r.bufLen])}
	}

	sizeVal, sizeWidth, ok, err := DecodeUnsigned(r.buf[r.pos+idWidth : r.bufLen])
	if err != nil {
		return nil, &CorruptedFileData{Kind: InvalidTagData, TagID: idVal, Position: tagStart}
	}
	if !ok {
		return nil, &UnexpectedEOF{TagStart: tagStart, TagID: &idVal, PartialData: copyBytes(r.buf[r.pos:r.bufLen])}
	}

	size := classifySize(sizeVal, sizeWidth)
	headerWidth := idWidth + sizeWidth

	return &headerInfo{
		ID:          idVal,
		Size:        size,
		TagStart:    tagStart,
		DataStart:   tagStart + int64(headerWidth),
		HeaderWidth: headerWidth,
	}, nil
}

// validateHeader checks a peeked header's scalar size, id legality,
// hierarchy placement, and size limits, consulting the configured
// allowances. It never mutates reader state.
func (r *Reader) validateHeader(h *headerInfo) error {
	dtype, known := r.compiled.TypeOf(h.ID)

	if known && isScalarType(dtype) && h.Size.IsKnown() && h.Size.Value() > 8 {
		return &CorruptedFileData{Kind: InvalidTagData, TagID: h.ID, Position: h.TagStart}
	}

	if !known && !r.allowInvalidTagIDs {
		return &CorruptedFileData{Kind: InvalidTagID, TagID: h.ID, Position: h.TagStart}
	}

	if !r.allowHierarchyProblems {
		var path []PathPart
		if known {
			path, _ = r.compiled.PathOf(h.ID)
		}
		if !ValidatePath(path, r.stackIDs()) {
			var parentID *uint64
			has := false
			if len(r.stack) > 0 {
				p := r.stack[len(r.stack)-1].id
				parentID = &p
				has = true
			}
			return &CorruptedFileData{Kind: HierarchyError, FoundTagID: h.ID, CurrentParentID: parentID, HasCurrentParent: has, Position: h.TagStart}
		}
	}

	if r.maxTagSize != nil && h.Size.IsKnown() && h.Size.Value() > *r.maxTagSize {
		return &CorruptedFileData{Kind: InvalidTagSize, TagID: h.ID, Position: h.TagStart, Size: h.Size.Value()}
	}

	if !r.allowOversizedTags && h.Size.IsKnown() {
		childEnd := h.DataStart + int64(h.Size.Value())
		for _, open := range r.stack {
			if open.size.IsKnown() {
				ancestorEnd := open.dataStart + int64(open.size.Value())
				if childEnd > ancestorEnd {
					return &CorruptedFileData{Kind: OversizedChildElement, TagID: h.ID, Position: h.TagStart, Size: h.Size.Value()}
				}
			}
		}
	}

	return nil
}

func isScalarType(t TagDataType) bool {
	return t == UnsignedInt || t == Integer || t == Float
}

// pump performs one unit of reader work: closing already-finished
// Known-size ancestors, closing Unknown-size ancestors ended by the
// next incoming tag, and finally decoding and emitting that tag. It may
// enqueue zero or more events; Next drains the queue and calls pump
// again when it runs dry.
func (r *Reader) pump() error {
	r.compact()

	if r.closeKnownCompleted() {
		return nil
	}

	if err := r.ensureBuffered(1); err != nil {
		return err
	}
	if r.bufLen-r.pos == 0 {
		if len(r.stack) > 0 {
			r.drainStackInnermostFirst()
		} else {
			r.finished = true
		}
		return nil
	}

	h, err := r.peekHeader()
	if err != nil {
		return err
	}

	if !r.startHeuristicDone {
		r.applyStartHeuristic(h)
	}

	r.closeUnknownEndedBy(h.ID)

	if err := r.validateHeader(h); err != nil {
		return err
	}

	return r.readAndEmit(h)
}

// closeKnownCompleted closes open tags whose Known size has been fully
// consumed by the current offset, deepest (innermost) first. Tags nested
// inside such a tag (an Unknown-size child, say) are closed before it.
// It pops one tag per call, so each Master::End is drained before the
// next one is produced; pump calls it again until nothing is left.
func (r *Reader) closeKnownCompleted() bool {
	for _, t := range r.stack {
		if t.size.IsKnown() && t.dataStart+int64(t.size.Value()) <= r.absPos() {
			top := r.stack[len(r.stack)-1]
			r.stack = r.stack[:len(r.stack)-1]
			r.enqueue(NewMasterEnd(top.id), top.tagStart)
			return true
		}
	}
	return false
}

// closeUnknownEndedBy pops every open Unknown-size tag that incomingID
// legally ends, innermost first, repeating until the new top of stack
// is Known-sized or not ended by incomingID.
func (r *Reader) closeUnknownEndedBy(incomingID uint64) bool {
	produced := false
	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]
		if !top.size.IsKnown() && IsEndedBy(r.compiled, top.id, incomingID) {
			r.stack = r.stack[:len(r.stack)-1]
			r.enqueue(NewMasterEnd(top.id), top.tagStart)
			produced = true
			continue
		}
		break
	}
	return produced
}

// drainStackInnermostFirst empties the open-master stack at EOF, emitting
// Master::End events innermost first so a stream left with several
// nested Unknown-size elements still open at end-of-stream closes in a
// well-formed order.
func (r *Reader) drainStackInnermostFirst() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		r.enqueue(NewMasterEnd(r.stack[i].id), r.stack[i].tagStart)
	}
	r.stack = nil
}

// applyStartHeuristic trusts the very first tag seen in the stream: if
// its declared path names only concrete ancestors (no Global parts),
// those ancestors are synthesized onto the open stack with Unknown size
// so normal hierarchy checks succeed for a reader started mid-document.
func (r *Reader) applyStartHeuristic(h *headerInfo) {
	r.startHeuristicDone = true
	if len(r.stack) != 0 {
		return
	}

	path, known := r.compiled.PathOf(h.ID)
	if !known || len(path) == 0 || pathHasGlobal(path) {
		return
	}

	for _, part := range path {
		r.stack = append(r.stack, processingTag{
			id:        part.ID(),
			size:      UnknownSize(),
			tagStart:  h.TagStart,
			dataStart: h.DataStart,
		})
	}
	Logger.Trace().Uint64("tag_id", h.ID).Msg("ebml: stream-start heuristic synthesized ancestor stack")
}

func pathHasGlobal(path []PathPart) bool {
	for _, p := range path {
		if p.IsGlobal() {
			return true
		}
	}
	return false
}

// readAndEmit consumes the header bytes for an already-validated tag
// and produces its event(s).
func (r *Reader) readAndEmit(h *headerInfo) error {
	r.pos += h.HeaderWidth

	dtype, known := r.compiled.TypeOf(h.ID)
	isRaw := !known
	if isRaw {
		dtype = Binary
	}

	if dtype == Master {
		return r.emitMasterStart(h, isRaw)
	}
	return r.emitScalar(h, dtype, isRaw)
}

func (r *Reader) emitMasterStart(h *headerInfo, isRaw bool) error {
	r.stack = append(r.stack, processingTag{id: h.ID, size: h.Size, tagStart: h.TagStart, dataStart: h.DataStart})

	if !isRaw && (r.bufferAll || r.bufferSet[h.ID]) {
		children, err := r.bufferSubtree(h.ID, len(r.stack))
		if err != nil {
			return err
		}
		r.enqueue(NewMasterFull(h.ID, children), h.TagStart)
		return nil
	}

	r.enqueue(NewMasterStart(h.ID), h.TagStart)
	return nil
}

func (r *Reader) emitScalar(h *headerInfo, dtype TagDataType, isRaw bool) error {
	if !h.Size.IsKnown() {
		return &CorruptedFileData{Kind: InvalidTagData, TagID: h.ID, Position: h.TagStart}
	}

	n := int(h.Size.Value())
	sizeVal := h.Size.Value()
	data, err := r.readPayload(n, h.TagStart, h.ID, &sizeVal)
	if err != nil {
		return err
	}

	var v Value
	if isRaw {
		v = NewRawTag(h.ID, data)
	} else {
		switch dtype {
		case UnsignedInt:
			val, cErr := BytesToU64(data)
			if cErr != nil {
				return &CorruptedTagData{TagID: h.ID, Problem: cErr}
			}
			v = NewUnsignedInt(h.ID, val)
		case Integer:
			val, cErr := BytesToI64(data)
			if cErr != nil {
				return &CorruptedTagData{TagID: h.ID, Problem: cErr}
			}
			v = NewInteger(h.ID, val)
		case Utf8:
			if !utf8.Valid(data) {
				return &CorruptedTagData{TagID: h.ID, Problem: &FromUtf8Error{Data: data}}
			}
			v = NewUtf8(h.ID, string(data))
		case Binary:
			v = NewBinary(h.ID, data)
		case Float:
			val, cErr := BytesToF64(data)
			if cErr != nil {
				return &CorruptedTagData{TagID: h.ID, Problem: cErr}
			}
			v = NewFloat(h.ID, val)
		}
	}

	r.enqueue(v, h.TagStart)
	return nil
}

// readPayload reads n bytes as a tag's body, returning *UnexpectedEOF
// with as much partial progress as is known if the stream runs dry.
func (r *Reader) readPayload(n int, tagStart int64, tagID uint64, tagSize *uint64) ([]byte, error) {
	r.ensureCapacity(n)
	if err := r.ensureBuffered(n); err != nil {
		return nil, err
	}
	if r.bufLen-r.pos < n {
		partial := copyBytes(r.buf[r.pos:r.bufLen])
		r.pos = r.bufLen
		id := tagID
		return nil, &UnexpectedEOF{TagStart: tagStart, TagID: &id, TagSize: tagSize, PartialData: partial}
	}
	data := copyBytes(r.buf[r.pos : r.pos+n])
	r.pos += n
	return data, nil
}

package ebml

import (
	"fmt"

	"github.com/pkg/errors"
)

// Vint decoding/encoding errors.
var (
	ErrReadVintOverflow        = errors.New("ebml: vint width wider than 8 bytes")
	ErrWriteVintOverflow       = errors.New("ebml: value too large to encode as an unsigned vint")
	ErrWriteSignedVintOverflow = errors.New("ebml: value outside range for a signed vint")
	ErrReadU64Overflow         = errors.New("ebml: cannot read unsigned integer from more than 8 bytes")
	ErrReadI64Overflow         = errors.New("ebml: cannot read integer from more than 8 bytes")
	ErrReadF64Mismatch         = errors.New("ebml: float data must be 4 or 8 bytes")
)

// FromUtf8Error reports that a Utf8 tag's payload was not valid UTF-8.
type FromUtf8Error struct {
	Data []byte
}

func (e *FromUtf8Error) Error() string {
	return fmt.Sprintf("ebml: could not read utf8 data: %x", e.Data)
}

// CorruptedFileData reports a structural violation of the EBML wire
// format: an id, header, or nesting problem that has nothing to do with
// a specific tag's payload.
type CorruptedFileData struct {
	Kind CorruptedKind

	TagID    uint64
	Position int64

	// HierarchyError fields
	FoundTagID       uint64
	CurrentParentID  *uint64
	HasCurrentParent bool

	// OversizedChildElement / InvalidTagSize
	Size uint64
}

// CorruptedKind discriminates the ways a stream can be found corrupt.
type CorruptedKind int

const (
	InvalidTagID CorruptedKind = iota
	InvalidTagData
	HierarchyError
	OversizedChildElement
	InvalidTagSize
)

func (e *CorruptedFileData) Error() string {
	switch e.Kind {
	case InvalidTagID:
		return fmt.Sprintf("ebml: invalid tag id 0x%X at position %d", e.TagID, e.Position)
	case InvalidTagData:
		return fmt.Sprintf("ebml: invalid tag data for id 0x%X at position %d", e.TagID, e.Position)
	case HierarchyError:
		if e.HasCurrentParent {
			return fmt.Sprintf("ebml: found tag 0x%X when processing parent 0x%X", e.FoundTagID, *e.CurrentParentID)
		}
		return fmt.Sprintf("ebml: found tag 0x%X with no open parent", e.FoundTagID)
	case OversizedChildElement:
		return fmt.Sprintf("ebml: tag 0x%X at position %d (size %d) overflows an ancestor's declared size", e.TagID, e.Position, e.Size)
	case InvalidTagSize:
		return fmt.Sprintf("ebml: tag 0x%X at position %d declares size %d, exceeding the configured maximum", e.TagID, e.Position, e.Size)
	default:
		return "ebml: corrupted file data"
	}
}

// UnexpectedEOF reports the stream ending while a tag was being read.
type UnexpectedEOF struct {
	TagStart    int64
	TagID       *uint64
	TagSize     *uint64
	PartialData []byte
}

func (e *UnexpectedEOF) Error() string {
	id := "none"
	if e.TagID != nil {
		id = fmt.Sprintf("0x%X", *e.TagID)
	}
	size := "none"
	if e.TagSize != nil {
		size = fmt.Sprintf("%d", *e.TagSize)
	}
	return fmt.Sprintf("ebml: reached EOF unexpectedly: tag offset %d, id %s, size %s", e.TagStart, id, size)
}

// CorruptedTagData reports that a tag's payload was rejected by its
// typed decoder.
type CorruptedTagData struct {
	TagID   uint64
	Problem error
}

func (e *CorruptedTagData) Error() string {
	return fmt.Sprintf("ebml: error reading data for tag 0x%X: %s", e.TagID, e.Problem)
}

func (e *CorruptedTagData) Unwrap() error { return e.Problem }

// ReadError wraps an I/O failure from the underlying byte source.
type ReadError struct {
	Source error
}

func (e *ReadError) Error() string { return fmt.Sprintf("ebml: error reading from source: %s", e.Source) }
func (e *ReadError) Unwrap() error { return e.Source }

func newReadError(source error) *ReadError {
	return &ReadError{Source: errors.WithStack(source)}
}

// Write-side errors.

// TagIDError reports an id that is not representable as a valid vint.
type TagIDError struct {
	TagID uint64
}

func (e *TagIDError) Error() string { return fmt.Sprintf("ebml: tag id 0x%X is not a valid vint", e.TagID) }

// TagSizeError reports a tag the writer cannot frame: a size too large
// for any vint, or a value of a kind the writer does not encode.
type TagSizeError struct {
	Message string
}

func (e *TagSizeError) Error() string { return fmt.Sprintf("ebml: %s", e.Message) }

// UnexpectedClosingTag reports a Master::End whose id does not match
// the currently open master.
type UnexpectedClosingTag struct {
	TagID      uint64
	ExpectedID *uint64
}

func (e *UnexpectedClosingTag) Error() string {
	if e.ExpectedID != nil {
		return fmt.Sprintf("ebml: unexpected closing tag 0x%X, expected 0x%X", e.TagID, *e.ExpectedID)
	}
	return fmt.Sprintf("ebml: unexpected closing tag 0x%X, no tag is open", e.TagID)
}

// WriteError wraps an I/O failure from the underlying byte sink.
type WriteError struct {
	Source error
}

func (e *WriteError) Error() string { return fmt.Sprintf("ebml: error writing to destination: %s", e.Source) }
func (e *WriteError) Unwrap() error { return e.Source }

func newWriteError(source error) *WriteError {
	return &WriteError{Source: errors.WithStack(source)}
}

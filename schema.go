package ebml

import "fmt"

// TagDataType is the closed set of payload shapes a schema entry can
// declare. EBML Date elements have no dedicated variant by design; a
// date-shaped element is declared Binary and surfaced as opaque bytes.
type TagDataType int

const (
	Master TagDataType = iota
	UnsignedInt
	Integer
	Utf8
	Binary
	Float
)

func (t TagDataType) String() string {
	switch t {
	case Master:
		return "Master"
	case UnsignedInt:
		return "UnsignedInt"
	case Integer:
		return "Integer"
	case Utf8:
		return "Utf8"
	case Binary:
		return "Binary"
	case Float:
		return "Float"
	default:
		return fmt.Sprintf("TagDataType(%d)", int(t))
	}
}

// MasterKind distinguishes the three ways a Master element is surfaced:
// Start/End frame an incrementally streamed subtree, Full carries the
// complete, materialized child sequence.
type MasterKind int

const (
	MasterStart MasterKind = iota
	MasterEnd
	MasterFull
)

// MasterValue is the three-valued envelope over a tag value type T:
// streamed Start/End frames, or a fully materialized Full subtree.
type MasterValue[T any] struct {
	Kind     MasterKind
	Children []T // only meaningful when Kind == MasterFull
}

// PathPart is one segment of a schema entry's declared document path:
// either a specific named ancestor, or a Global run of arbitrary
// nesting levels bounded (optionally) below and above.
type PathPart struct {
	global bool
	id     uint64
	min    *uint64
	max    *uint64
}

// PathID builds a PathPart naming a specific ancestor.
func PathID(id uint64) PathPart { return PathPart{global: false, id: id} }

// PathGlobal builds a PathPart matching a run of arbitrary ancestors,
// bounded below by min and above by max. Either bound may be nil.
func PathGlobal(min, max *uint64) PathPart {
	return PathPart{global: true, min: min, max: max}
}

// IsGlobal reports whether this segment is a Global run rather than a
// specific ancestor id.
func (p PathPart) IsGlobal() bool { return p.global }

// ID returns the ancestor id for a non-global segment. Only meaningful
// when IsGlobal() is false.
func (p PathPart) ID() uint64 { return p.id }

// Bounds returns the (min, max) bounds for a Global segment. Either may
// be nil, meaning unbounded in that direction. Only meaningful when
// IsGlobal() is true.
func (p PathPart) Bounds() (min, max *uint64) { return p.min, p.max }

// Equal reports structural equality between two PathParts.
func (p PathPart) Equal(other PathPart) bool {
	if p.global != other.global {
		return false
	}
	if !p.global {
		return p.id == other.id
	}
	return uint64PtrEqual(p.min, other.min) && uint64PtrEqual(p.max, other.max)
}

func uint64PtrEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (p PathPart) String() string {
	if !p.global {
		return fmt.Sprintf("Id(0x%X)", p.id)
	}
	lo, hi := "_", "_"
	if p.min != nil {
		lo = fmt.Sprintf("%d", *p.min)
	}
	if p.max != nil {
		hi = fmt.Sprintf("%d", *p.max)
	}
	return fmt.Sprintf("Global(%s-%s)", lo, hi)
}

// Value is the runtime tag value type this codec's reader and writer
// operate on: one concrete representation shared across every schema,
// carrying whichever payload its TagDataType selects, plus the two
// reserved-id sentinels (RawTag, and the implicit Crc32/Void globals,
// which are ordinary Binary values).
//
// A schema compiled by Compile (or generated by internal/schemagen)
// supplies named constructors and accessors layered on top of Value
// for each declared variant; Value itself is the thing those functions
// build and unwrap.
type Value struct {
	id       uint64
	dataType TagDataType
	isRaw    bool

	u uint64
	i int64
	f float64
	s string
	b []byte
	m MasterValue[Value]
}

// ID returns the tag id carried by this value, including for RawTag.
func (v Value) ID() uint64 { return v.id }

// Type returns the value's data type. For RawTag values this is Binary.
func (v Value) Type() TagDataType { return v.dataType }

// IsRawTag reports whether this value is the RawTag sentinel for an id
// absent from the schema.
func (v Value) IsRawTag() bool { return v.isRaw }

// NewMasterStart builds a Master::Start framing value for id.
func NewMasterStart(id uint64) Value {
	return Value{id: id, dataType: Master, m: MasterValue[Value]{Kind: MasterStart}}
}

// NewMasterEnd builds a Master::End framing value for id.
func NewMasterEnd(id uint64) Value {
	return Value{id: id, dataType: Master, m: MasterValue[Value]{Kind: MasterEnd}}
}

// NewMasterFull builds a Master::Full value carrying the complete,
// materialized child sequence in source order.
func NewMasterFull(id uint64, children []Value) Value {
	return Value{id: id, dataType: Master, m: MasterValue[Value]{Kind: MasterFull, Children: children}}
}

// NewUnsignedInt builds an UnsignedInt value.
func NewUnsignedInt(id uint64, val uint64) Value {
	return Value{id: id, dataType: UnsignedInt, u: val}
}

// NewInteger builds an Integer value.
func NewInteger(id uint64, val int64) Value {
	return Value{id: id, dataType: Integer, i: val}
}

// NewUtf8 builds a Utf8 value.
func NewUtf8(id uint64, val string) Value {
	return Value{id: id, dataType: Utf8, s: val}
}

// NewBinary builds a Binary value.
func NewBinary(id uint64, val []byte) Value {
	return Value{id: id, dataType: Binary, b: val}
}

// NewFloat builds a Float value.
func NewFloat(id uint64, val float64) Value {
	return Value{id: id, dataType: Float, f: val}
}

// NewRawTag builds the sentinel value for an id absent from the schema.
func NewRawTag(id uint64, data []byte) Value {
	return Value{id: id, dataType: Binary, isRaw: true, b: data}
}

// AsMaster returns the Master envelope carried by v, if v's type is
// Master.
func (v Value) AsMaster() (MasterValue[Value], bool) {
	if v.dataType != Master {
		return MasterValue[Value]{}, false
	}
	return v.m, true
}

// AsUnsignedInt returns the UnsignedInt payload carried by v.
func (v Value) AsUnsignedInt() (uint64, bool) {
	if v.dataType != UnsignedInt {
		return 0, false
	}
	return v.u, true
}

// AsInteger returns the Integer payload carried by v.
func (v Value) AsInteger() (int64, bool) {
	if v.dataType != Integer {
		return 0, false
	}
	return v.i, true
}

// AsUtf8 returns the Utf8 payload carried by v.
func (v Value) AsUtf8() (string, bool) {
	if v.dataType != Utf8 {
		return "", false
	}
	return v.s, true
}

// AsBinary returns the Binary payload carried by v (also used for
// RawTag values).
func (v Value) AsBinary() ([]byte, bool) {
	if v.dataType != Binary {
		return nil, false
	}
	return v.b, true
}

// AsFloat returns the Float payload carried by v.
func (v Value) AsFloat() (float64, bool) {
	if v.dataType != Float {
		return 0, false
	}
	return v.f, true
}

// Reserved global element ids always present in a compiled schema.
const (
	IDCrc32 uint64 = 0xBF
	IDVoid  uint64 = 0xEC
)

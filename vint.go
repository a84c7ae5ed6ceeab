package ebml

import (
	"encoding/binary"
	"math"
)

// maxVintWidth is the widest vint this codec understands. EBML allows
// wider vints in principle, but no real-world element set needs them
// and staying within a uint64 keeps decoding branch-free.
const maxVintWidth = 8

// DecodeUnsigned reads an unsigned vint from the front of data.
//
// It returns the decoded value, the number of bytes consumed, and
// whether there was enough data to decode a full vint. A nil/false
// "ok" with a nil error means the caller needs to supply more bytes;
// a non-nil error means the data is structurally invalid (vint width
// wider than 8 bytes).
func DecodeUnsigned(data []byte) (value uint64, width int, ok bool, err error) {
	return decodeVint(data, false)
}

// DecodeUnsignedID reads an unsigned vint the way EBML element ids are
// read: the width-marker bit is kept set in the returned value, since
// that full bit pattern is the element's semantic identifier.
func DecodeUnsignedID(data []byte) (value uint64, width int, ok bool, err error) {
	return decodeVint(data, true)
}

func decodeVint(data []byte, keepMarker bool) (value uint64, width int, ok bool, err error) {
	if len(data) == 0 {
		return 0, 0, false, nil
	}

	first := data[0]
	w := vintWidth(first)
	if w == 0 {
		return 0, 0, false, ErrReadVintOverflow
	}
	if w > maxVintWidth {
		return 0, 0, false, ErrReadVintOverflow
	}
	if len(data) < w {
		return 0, 0, false, nil
	}

	var mask uint64
	if keepMarker {
		mask = 0xFF
	} else {
		mask = uint64(1<<(8-w)) - 1
	}

	value = uint64(data[0]) & mask
	for i := 1; i < w; i++ {
		value = (value << 8) | uint64(data[i])
	}

	return value, w, true, nil
}

// vintWidth returns the vint width encoded by the leading byte, 1..8,
// or 0 if the byte has no set bits (an invalid leading byte).
func vintWidth(first byte) int {
	for w := 1; w <= 8; w++ {
		if first&(0x80>>(w-1)) != 0 {
			return w
		}
	}
	return 0
}

// EncodeUnsigned encodes value as an unsigned vint. If width is 0, the
// smallest width that can hold value is chosen. If width is non-zero,
// value must fit within that width's payload capacity.
func EncodeUnsigned(value uint64, width int) ([]byte, error) {
	if width == 0 {
		width = minUnsignedWidth(value)
		if width == 0 {
			return nil, ErrWriteVintOverflow
		}
	} else {
		if width < 1 || width > maxVintWidth {
			return nil, ErrWriteVintOverflow
		}
		if value >= unsignedPayloadLimit(width) {
			return nil, ErrWriteVintOverflow
		}
	}

	out := make([]byte, width)
	v := value
	for i := width - 1; i >= 1; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	marker := byte(0x80 >> (width - 1))
	out[0] = byte(v) | marker

	return out, nil
}

// minUnsignedWidth returns the smallest vint width in [1,8] that can
// represent value, or 0 if value is too large for any supported width.
func minUnsignedWidth(value uint64) int {
	for w := 1; w <= maxVintWidth; w++ {
		if value < unsignedPayloadLimit(w) {
			return w
		}
	}
	return 0
}

// unsignedPayloadLimit returns 2^(7*width), the exclusive upper bound
// on payload values of a vint of the given width. The top value below
// it, 2^(7*width)-1, is the all-ones pattern read back as "unknown".
func unsignedPayloadLimit(width int) uint64 {
	bits := uint(7 * width)
	if bits >= 64 {
		// Only widths above 9 reach this: 2^bits does not fit in a uint64,
		// so cap at the representable maximum. Widths 1..8 never get here.
		return math.MaxUint64
	}
	return uint64(1) << bits
}

// DecodeSigned reads a signed vint from the front of data, using the
// same framing as DecodeUnsigned but interpreting the payload as two's
// complement over the payload's bit width.
func DecodeSigned(data []byte) (value int64, width int, ok bool, err error) {
	raw, w, ok, err := DecodeUnsigned(data)
	if err != nil || !ok {
		return 0, w, ok, err
	}

	bits := uint(7 * w)
	bias := int64(1) << (bits - 1)
	return int64(raw) - bias, w, true, nil
}

// EncodeSigned encodes a signed value as a vint, biasing the payload
// into the unsigned range representable at the chosen width.
func EncodeSigned(value int64, width int) ([]byte, error) {
	if width == 0 {
		width = minSignedWidth(value)
		if width == 0 {
			return nil, ErrWriteSignedVintOverflow
		}
	} else {
		lo, hi := signedRange(width)
		if value < lo || value >= hi {
			return nil, ErrWriteSignedVintOverflow
		}
	}

	bits := uint(7 * width)
	bias := int64(1) << (bits - 1)
	return EncodeUnsigned(uint64(value+bias), width)
}

func minSignedWidth(value int64) int {
	for w := 1; w <= maxVintWidth; w++ {
		lo, hi := signedRange(w)
		if value >= lo && value < hi {
			return w
		}
	}
	return 0
}

func signedRange(width int) (lo, hi int64) {
	bits := uint(7*width - 1)
	hi = int64(1) << bits
	lo = -hi
	return lo, hi
}

// BytesToU64 big-endian decodes up to 8 bytes into a uint64.
func BytesToU64(data []byte) (uint64, error) {
	if len(data) > 8 {
		return 0, ErrReadU64Overflow
	}
	var result uint64
	for _, b := range data {
		result = (result << 8) | uint64(b)
	}
	return result, nil
}

// BytesToI64 big-endian decodes up to 8 bytes into an int64, sign
// extending when the high bit of the first byte is set.
func BytesToI64(data []byte) (int64, error) {
	if len(data) > 8 {
		return 0, ErrReadI64Overflow
	}
	if len(data) == 0 {
		return 0, nil
	}

	var result uint64
	for _, b := range data {
		result = (result << 8) | uint64(b)
	}

	if data[0]&0x80 != 0 {
		// Sign extend: fill the bits above the payload width with ones.
		result |= ^uint64(0) << uint(8*len(data))
	}

	return int64(result), nil
}

// BytesToF64 decodes a 4-byte IEEE-754 single or 8-byte IEEE-754
// double, widening a single to double precision.
func BytesToF64(data []byte) (float64, error) {
	switch len(data) {
	case 4:
		bits := binary.BigEndian.Uint32(data)
		return float64(math.Float32frombits(bits)), nil
	case 8:
		bits := binary.BigEndian.Uint64(data)
		return math.Float64frombits(bits), nil
	default:
		return 0, ErrReadF64Mismatch
	}
}

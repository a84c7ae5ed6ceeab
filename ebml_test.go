package ebml

import (
	"math"
	"testing"
)

func TestDecodeUnsigned(t *testing.T) {
	testCases := []struct {
		name        string
		input       []byte
		keepMarker  bool
		expectedVal uint64
		expectedW   int
		expectErr   bool
		expectOK    bool
	}{
		{"1-byte value", []byte{0x81}, false, 1, 1, false, true},
		{"1-byte max value", []byte{0xFF}, false, 127, 1, false, true},
		{"1-byte with length marker", []byte{0x81}, true, 0x81, 1, false, true},

		{"2-byte value", []byte{0x40, 0x01}, false, 1, 2, false, true},
		{"2-byte value high", []byte{0x50, 0x11}, false, 0x1011, 2, false, true},
		{"2-byte max value", []byte{0x7F, 0xFF}, false, (1 << 14) - 1, 2, false, true},
		{"2-byte with length marker", []byte{0x50, 0x11}, true, 0x5011, 2, false, true},

		{"4-byte value", []byte{0x10, 0x00, 0x00, 0x01}, false, 1, 4, false, true},
		{"4-byte value high", []byte{0x1A, 0xBC, 0xDE, 0xF0}, false, 0xABCDEF0, 4, false, true},
		{"4-byte max value", []byte{0x1F, 0xFF, 0xFF, 0xFF}, false, (1 << 28) - 1, 4, false, true},
		{"4-byte with length marker", []byte{0x1A, 0xBC, 0xDE, 0xF0}, true, 0x1ABCDEF0, 4, false, true},

		{"8-byte value", []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, false, 1, 8, false, true},
		{"8-byte value high", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, false, 0x23456789ABCDEF, 8, false, true},
		{"8-byte max value", []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, false, (1 << 56) - 1, 8, false, true},

		{"invalid leading zero byte", []byte{0x00}, false, 0, 0, true, false},
		{"short second byte", []byte{0x40}, false, 0, 0, false, false},
		{"short later byte", []byte{0x10, 0x00}, false, 0, 0, false, false},
		{"empty input", []byte{}, false, 0, 0, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var val uint64
			var width int
			var ok bool
			var err error
			if tc.keepMarker {
				val, width, ok, err = DecodeUnsignedID(tc.input)
			} else {
				val, width, ok, err = DecodeUnsigned(tc.input)
			}

			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expectOK {
				t.Fatalf("ok = %v, want %v", ok, tc.expectOK)
			}
			if !ok {
				return
			}
			if val != tc.expectedVal {
				t.Errorf("value = 0x%X, want 0x%X", val, tc.expectedVal)
			}
			if width != tc.expectedW {
				t.Errorf("width = %d, want %d", width, tc.expectedW)
			}
		})
	}
}

func TestEncodeUnsignedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 126, 127, 128, 16383, 16384, 1 << 20, 1<<56 - 2}

	for _, v := range values {
		encoded, err := EncodeUnsigned(v, 0)
		if err != nil {
			t.Fatalf("EncodeUnsigned(%d) error: %v", v, err)
		}
		decoded, width, ok, err := DecodeUnsigned(encoded)
		if err != nil || !ok {
			t.Fatalf("DecodeUnsigned(%x) = _, _, %v, %v", encoded, ok, err)
		}
		if decoded != v {
			t.Errorf("round-trip %d -> %x -> %d", v, encoded, decoded)
		}
		if width != len(encoded) {
			t.Errorf("width %d != len(encoded) %d", width, len(encoded))
		}
	}
}

func TestEncodeUnsignedOverflow(t *testing.T) {
	// Width 8 carries a 56-bit payload, so any value of 2^56 or more
	// cannot be encoded as an unsigned vint.
	if _, err := EncodeUnsigned(math.MaxUint64, 0); err == nil {
		t.Error("expected an error encoding a value wider than any supported vint")
	}
}

func TestSignedVintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, -64, 1000, -1000, 1 << 20, -(1 << 20)}

	for _, v := range values {
		encoded, err := EncodeSigned(v, 0)
		if err != nil {
			t.Fatalf("EncodeSigned(%d) error: %v", v, err)
		}
		decoded, _, ok, err := DecodeSigned(encoded)
		if err != nil || !ok {
			t.Fatalf("DecodeSigned(%x) = _, _, %v, %v", encoded, ok, err)
		}
		if decoded != v {
			t.Errorf("round-trip %d -> %x -> %d", v, encoded, decoded)
		}
	}
}

func TestBytesToU64(t *testing.T) {
	cases := []struct {
		data []byte
		want uint64
	}{
		{[]byte{}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0xFF}, 0xFF},
		{[]byte{0x01, 0x00}, 0x0100},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, math.MaxUint64},
	}
	for _, tc := range cases {
		got, err := BytesToU64(tc.data)
		if err != nil {
			t.Fatalf("BytesToU64(%x) error: %v", tc.data, err)
		}
		if got != tc.want {
			t.Errorf("BytesToU64(%x) = %d, want %d", tc.data, got, tc.want)
		}
	}

	if _, err := BytesToU64(make([]byte, 9)); err == nil {
		t.Error("expected an error decoding more than 8 bytes")
	}
}

func TestBytesToI64SignExtends(t *testing.T) {
	cases := []struct {
		data []byte
		want int64
	}{
		{[]byte{0x01}, 1},
		{[]byte{0xFF}, -1},
		{[]byte{0x00, 0x80}, 128},
		{[]byte{0xFF, 0x80}, -128},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, -1},
	}
	for _, tc := range cases {
		got, err := BytesToI64(tc.data)
		if err != nil {
			t.Fatalf("BytesToI64(%x) error: %v", tc.data, err)
		}
		if got != tc.want {
			t.Errorf("BytesToI64(%x) = %d, want %d", tc.data, got, tc.want)
		}
	}
}

func TestBytesToF64(t *testing.T) {
	single := []byte{0x3F, 0x80, 0x00, 0x00} // 1.0 as float32
	if got, err := BytesToF64(single); err != nil || got != 1.0 {
		t.Errorf("BytesToF64(single 1.0) = %v, %v", got, err)
	}

	double := []byte{0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00} // 1.0 as float64
	if got, err := BytesToF64(double); err != nil || got != 1.0 {
		t.Errorf("BytesToF64(double 1.0) = %v, %v", got, err)
	}

	if _, err := BytesToF64([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Error("expected an error for a non 4/8 byte float payload")
	}
}

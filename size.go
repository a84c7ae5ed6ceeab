package ebml

// EBMLSize represents the declared body length of a tag: either a known
// byte count, or Unknown, meaning the element's end is determined
// structurally (by a sibling, parent, or root arriving, or by EOF)
// rather than by a declared length.
type EBMLSize struct {
	known bool
	value uint64
}

// KnownSize builds an EBMLSize carrying a known byte length.
func KnownSize(n uint64) EBMLSize { return EBMLSize{known: true, value: n} }

// UnknownSize builds an EBMLSize representing an unknown-length element.
func UnknownSize() EBMLSize { return EBMLSize{known: false} }

// IsKnown reports whether the size is a known byte length.
func (s EBMLSize) IsKnown() bool { return s.known }

// Value returns the known byte length. It is only meaningful when
// IsKnown() is true.
func (s EBMLSize) Value() uint64 { return s.value }

// classifySize applies the Known/Unknown size rule to a decoded vint
// payload: if the raw value equals 2^(7*width)-1 (an all-ones payload),
// the size is Unknown.
func classifySize(rawValue uint64, width int) EBMLSize {
	if rawValue == unsignedPayloadLimit(width)-1 {
		return UnknownSize()
	}
	return KnownSize(rawValue)
}

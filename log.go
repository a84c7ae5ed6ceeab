package ebml

import "github.com/rs/zerolog"

// Logger receives structural trace events from the reader:
// recovery skips, subtree buffering, and the stream-start heuristic
// firing. It defaults to a no-op logger so embedding this codec in an
// application never produces unsolicited output; callers that want
// visibility assign their own zerolog.Logger here.
var Logger = zerolog.Nop()

// SetLogger replaces the package-level logger used for structural trace
// events. Pass zerolog.Nop() to silence it again.
func SetLogger(l zerolog.Logger) {
	Logger = l
}

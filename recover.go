package ebml

// TryRecover advances the internal cursor one byte at a time, peeking
// and validating headers, until a legal header is found or the stream
// ends. Open Known-size ancestors have their declared size grown by the
// number of bytes skipped over so the normal closing arithmetic in
// closeKnownCompleted remains satisfiable afterward.
func (r *Reader) TryRecover() error {
	skipped := uint64(0)
	for {
		r.compact()
		if err := r.ensureBuffered(1); err != nil {
			return err
		}
		if r.bufLen-r.pos == 0 {
			r.finished = false
			return nil // stream ended; recovery stops here
		}

		h, err := r.peekHeader()
		if err == nil {
			if verr := r.validateHeader(h); verr == nil {
				for i := range r.stack {
					if r.stack[i].size.IsKnown() {
						r.stack[i].size = KnownSize(r.stack[i].size.Value() + skipped)
					}
				}
				r.finished = false
				Logger.Debug().Uint64("skipped_bytes", skipped).Msg("ebml: recovery found a valid header")
				return nil
			}
		}

		r.pos++
		skipped++
	}
}

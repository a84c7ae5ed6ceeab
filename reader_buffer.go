package ebml

// bufferSubtree materializes an already-opened master tag (pushed at
// depth pushedDepth on r.stack) as a single Master::Full value by
// draining events through the same pump/queue machinery normal reading
// uses, including recursively for any nested buffered masters, until
// our own Master::End resurfaces.
func (r *Reader) bufferSubtree(id uint64, pushedDepth int) ([]Value, error) {
	Logger.Trace().Uint64("tag_id", id).Msg("ebml: subtree buffering started")

	var flat []Value

	for {
		for len(r.queue) == 0 {
			if r.finished {
				return nil, &UnexpectedEOF{}
			}
			if err := r.pump(); err != nil {
				r.finished = true
				return nil, err
			}
		}

		ev := r.queue[0]
		r.queue = r.queue[1:]

		if m, ok := ev.Value.AsMaster(); ok && m.Kind == MasterEnd && ev.Value.ID() == id && len(r.stack) == pushedDepth-1 {
			Logger.Trace().Uint64("tag_id", id).Int("child_count", len(flat)).Msg("ebml: subtree buffering stopped")
			return rollup(flat), nil
		}

		flat = append(flat, ev.Value)
	}
}

// rollup collapses a flat, source-order event sequence into its nested
// form: every Master::Start is paired with its matching Master::End
// (tracked by nesting depth over any master events, not just same-id
// ones) and replaced by a single Master::Full carrying the recursively
// rolled-up children between them. Values already buffered as Full, and
// scalar values, pass through unchanged.
func rollup(events []Value) []Value {
	out := make([]Value, 0, len(events))

	for i := 0; i < len(events); i++ {
		ev := events[i]
		m, isMaster := ev.AsMaster()
		if !isMaster || m.Kind != MasterStart {
			out = append(out, ev)
			continue
		}

		depth := 1
		j := i + 1
		for ; j < len(events); j++ {
			if cm, ok := events[j].AsMaster(); ok {
				switch cm.Kind {
				case MasterStart:
					depth++
				case MasterEnd:
					depth--
					if depth == 0 {
						goto matched
					}
				}
			}
		}
	matched:
		children := rollup(events[i+1 : j])
		out = append(out, NewMasterFull(ev.ID(), children))
		i = j
	}

	return out
}

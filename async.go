package ebml

import (
	"context"
	"io"
)

// AsyncReader is a cooperative, channel-based adapter over Reader: a
// single goroutine pumps Reader.Next in a loop and delivers events over
// a buffered channel, so callers can select between a new event and
// other activity (cancellation, a ticker, other channels) instead of
// blocking a goroutine inside Next. It makes no concurrency promises
// beyond that: exactly one goroutine ever calls into the wrapped
// Reader.
type AsyncReader struct {
	events chan asyncEvent
	cancel context.CancelFunc
	done   chan struct{}
}

type asyncEvent struct {
	event Event
	err   error
}

// NewAsyncReader starts the pump goroutine and returns immediately. The
// goroutine exits, closing its event channel, when the wrapped reader is
// exhausted, returns an error, or ctx is canceled.
func NewAsyncReader(ctx context.Context, r *Reader) *AsyncReader {
	ctx, cancel := context.WithCancel(ctx)
	a := &AsyncReader{
		events: make(chan asyncEvent, 16),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go a.pump(ctx, r)

	return a
}

func (a *AsyncReader) pump(ctx context.Context, r *Reader) {
	defer close(a.done)
	defer close(a.events)

	for {
		ev, err := r.Next()

		select {
		case a.events <- asyncEvent{event: ev, err: err}:
		case <-ctx.Done():
			return
		}

		if err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// Next blocks until the next event is available, the wrapped reader is
// exhausted (io.EOF), the wrapped reader fails, or ctx is canceled.
func (a *AsyncReader) Next(ctx context.Context) (Event, error) {
	select {
	case ae, ok := <-a.events:
		if !ok {
			return Event{}, io.EOF
		}
		return ae.event, ae.err
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Close stops the pump goroutine and waits for it to exit. It is safe
// to call more than once.
func (a *AsyncReader) Close() {
	a.cancel()
	<-a.done
}

// bufferedAsyncSource adapts a staging buffer fed by the feed function into
// an io.Reader suitable for NewReader, for callers that receive EBML
// bytes in discrete chunks (e.g. off a network socket) rather than
// already holding an io.Reader. It is the "wrapper" flavor of async
// adapter: the sync Reader still does the decoding work, just over a
// source that blocks for more input instead of seeing EOF.
type bufferedAsyncSource struct {
	ctx    context.Context
	chunks chan []byte
	pend   []byte
}

// newBufferedAsyncSource builds an io.Reader that blocks in Read until
// either a chunk arrives via Feed, Close is called (yielding io.EOF
// once pending bytes are drained), or ctx is canceled.
func newBufferedAsyncSource(ctx context.Context) (*bufferedAsyncSource, func([]byte) bool, func()) {
	s := &bufferedAsyncSource{
		ctx:    ctx,
		chunks: make(chan []byte, 16),
	}

	feed := func(b []byte) bool {
		select {
		case s.chunks <- b:
			return true
		case <-ctx.Done():
			return false
		}
	}
	closeFn := func() { close(s.chunks) }

	return s, feed, closeFn
}

func (s *bufferedAsyncSource) Read(p []byte) (int, error) {
	for len(s.pend) == 0 {
		select {
		case chunk, ok := <-s.chunks:
			if !ok {
				return 0, io.EOF
			}
			s.pend = chunk
		case <-s.ctx.Done():
			return 0, s.ctx.Err()
		}
	}

	n := copy(p, s.pend)
	s.pend = s.pend[n:]
	return n, nil
}

// NewChunkFedReader builds a Reader whose underlying byte source is fed
// by discrete chunks rather than a pre-existing io.Reader, plus the
// feed/close functions a producer goroutine uses to supply those
// chunks. feed returns false if ctx was canceled before the chunk could
// be delivered.
func NewChunkFedReader(ctx context.Context, compiled *Compiled, opts ...ReaderOption) (*Reader, func([]byte) bool, func()) {
	src, feed, closeFn := newBufferedAsyncSource(ctx)
	return NewReader(src, compiled, opts...), feed, closeFn
}

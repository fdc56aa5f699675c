package tui

import (
	"io"
	"sync"
)

// SharedInput lets a series of Bubble Tea programs read one stream in turn.
//
// A program reading a plain io.Reader cannot cancel its pending Read when it
// quits, so the stale read would swallow the first key meant for the next
// program. SharedInput owns the only reader of the stream and hands bytes to
// whichever Attachment is live.
type SharedInput struct {
	data   chan []byte
	stop   chan struct{}
	exited chan struct{}
	once   sync.Once

	mu       sync.Mutex
	leftover []byte
	err      error
}

// NewSharedInput starts pumping r. The pump exits when r returns an error
// or the SharedInput is closed.
func NewSharedInput(r io.Reader) *SharedInput {
	s := &SharedInput{
		data:   make(chan []byte),
		stop:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go s.pump(r)
	return s
}

func (s *SharedInput) pump(r io.Reader) {
	defer close(s.exited)

	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.data <- chunk:
			case <-s.stop:
				return
			}
		}
		if err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			close(s.data)
			return
		}
	}
}

// Close stops handing out input. A pump blocked on delivering a chunk exits
// at once; one blocked in Read exits when the stream returns. The stream
// itself is not closed.
func (s *SharedInput) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

// Attach returns a reader that receives input until it is detached.
func (s *SharedInput) Attach() *Attachment {
	return &Attachment{shared: s, done: make(chan struct{})}
}

// Attachment is one program's view of a SharedInput.
type Attachment struct {
	shared *SharedInput
	done   chan struct{}
	once   sync.Once
}

// Read implements io.Reader. After Detach it returns io.EOF without
// consuming input.
func (a *Attachment) Read(p []byte) (int, error) {
	s := a.shared

	s.mu.Lock()
	if len(s.leftover) > 0 {
		n := copy(p, s.leftover)
		s.leftover = s.leftover[n:]
		s.mu.Unlock()
		return n, nil
	}
	s.mu.Unlock()

	select {
	case <-a.done:
		return 0, io.EOF
	case <-s.stop:
		return 0, io.EOF
	case chunk, ok := <-s.data:
		if !ok {
			s.mu.Lock()
			defer s.mu.Unlock()
			return 0, s.err
		}
		select {
		case <-a.done:
			s.mu.Lock()
			s.leftover = append(chunk, s.leftover...)
			s.mu.Unlock()
			return 0, io.EOF
		default:
		}
		n := copy(p, chunk)
		if n < len(chunk) {
			s.mu.Lock()
			s.leftover = append(s.leftover, chunk[n:]...)
			s.mu.Unlock()
		}
		return n, nil
	}
}

// Detach stops the attachment. Bytes not yet read stay with the SharedInput.
func (a *Attachment) Detach() {
	a.once.Do(func() { close(a.done) })
}

// Close detaches the attachment. It never closes the underlying stream.
func (a *Attachment) Close() error {
	a.Detach()
	return nil
}

package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Stream)(nil)

// Stream is an in-memory progrock.Writer that hands status updates to a
// single reader in the order they were written. Writes never block. Updates
// written before Attach are dropped, so an unread stream holds nothing.
type Stream struct {
	mu       sync.Mutex
	cond     *sync.Cond
	pending  []*progrock.StatusUpdate
	attached bool
	closed   bool
}

// NewStream creates an open, detached stream.
func NewStream() *Stream {
	s := &Stream{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Attach starts queueing updates for the reader.
func (s *Stream) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = true
}

// WriteStatus queues an update for the reader. Updates written before Attach
// or after Close are dropped.
func (s *Stream) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached || s.closed {
		return nil
	}
	s.pending = append(s.pending, update)
	s.cond.Signal()
	return nil
}

// Read blocks until an update is available. Once the stream is closed and
// drained it returns io.EOF.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.pending) == 0 && !s.closed {
		s.cond.Wait()
	}
	if len(s.pending) == 0 {
		return nil, io.EOF
	}

	update := s.pending[0]
	s.pending[0] = nil
	s.pending = s.pending[1:]
	return update, nil
}

// Close ends the stream. It is safe to call more than once.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cond.Broadcast()
	return nil
}

package pool

import (
	"io"
	"sync"
)

// LockedReader wraps an io.Reader so that it is safe for concurrent reads.
//
// Drawing from an entropy source mutates it, so a source shared between
// concurrent provers has to be synchronized. Each read acquires a lock;
// callers that want to avoid the contention should supply one reader per
// goroutine instead.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader wraps an underlying reader.
func NewLockedReader(r io.Reader) *LockedReader {
	// The zero value of m is ready to use.
	return &LockedReader{reader: r}
}

// Read implements io.Reader for LockedReader.
//
// Concurrent callers race for which bytes they end up with, but no byte of
// the underlying stream is ever delivered twice, and the reader's state is
// never corrupted.
func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}

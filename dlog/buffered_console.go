package dlog

// Wrap a console writer to buffer writes, yet flush in a timely,
// deterministic fashion, either buffering up to n bytes, or for up to t
// milliseconds, whichever comes first.

import (
	"bufio"
	"io"
	"sync"
	"time"
)

type BufferedConsole struct {
	mu               sync.Mutex
	wr               io.Writer
	bufferSize       int
	maxFlushInterval time.Duration
	baseWr           io.Writer

	stop     chan struct{}
	stopOnce sync.Once
	done     sync.WaitGroup
}

// NewBufferedConsole wraps baseWr. A bufferSize of zero disables buffering and
// every Write goes straight to baseWr. A positive maxFlushInterval starts a
// goroutine that flushes at least that often; Close stops it.
func NewBufferedConsole(
	baseWr io.Writer,
	bufferSize int,
	maxFlushInterval time.Duration) *BufferedConsole {

	cb := &BufferedConsole{
		bufferSize:       bufferSize,
		maxFlushInterval: maxFlushInterval,
		baseWr:           baseWr,
		stop:             make(chan struct{}),
	}
	if bufferSize > 0 {
		cb.wr = bufio.NewWriterSize(baseWr, bufferSize)
		if maxFlushInterval > 0 {
			cb.done.Add(1)
			go cb.flushDaemon()
		}
	} else {
		cb.wr = baseWr
	}
	return cb
}

func (cb *BufferedConsole) Flush() error {
	type flusher interface {
		Flush() error
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if fwr, ok := cb.wr.(flusher); ok {
		return fwr.Flush()
	}
	return nil
}

func (cb *BufferedConsole) Sync() error {
	type syncer interface {
		Sync() error
	}
	if err := cb.Flush(); err != nil {
		return err
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if swr, ok := cb.baseWr.(syncer); ok {
		return swr.Sync()
	}
	return nil
}

func (cb *BufferedConsole) flushDaemon() {
	defer cb.done.Done()
	// Try to guarantee that we flush at least every maxFlushInterval.
	// This can result in a single extra queued flush if the
	// underlying writer takes longer maxFlushInterval.
	ticker := time.NewTicker(cb.maxFlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = cb.Flush() // Ignore error.
		case <-cb.stop:
			return
		}
	}
}

func (cb *BufferedConsole) Write(b []byte) (n int, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.wr.Write(b)
}

// Close stops the flush goroutine and flushes whatever is buffered.
func (cb *BufferedConsole) Close() error {
	cb.stopOnce.Do(func() { close(cb.stop) })
	cb.done.Wait()
	return cb.Flush()
}

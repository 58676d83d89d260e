// Package link reads the firmware's telemetry stream from a serial port and
// delivers decoded samples on a channel.
package link

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"texas/host/serial"
	"texas/protocol"
)

const (
	// DefaultBufferSize is one second of ticks.
	DefaultBufferSize = protocol.DefaultTickHz

	readChunk = 256
)

// Link is a connection to the firmware. The stream has no framing, so the
// first byte read is sample 0.
type Link struct {
	cfg     *serial.Config
	bufSize int
	decoder *protocol.Decoder

	port    io.ReadCloser
	samples chan protocol.Sample
	done    chan struct{}
	mu      sync.RWMutex
	ctx     context.Context
	cancel  context.CancelFunc

	started   bool
	connected bool
	// A serial read that times out reports io.EOF; only a pipe really ends.
	eofIsTimeout bool

	received atomic.Uint64
	dropped  atomic.Uint64
}

// New creates a link for the stream kind sent at tickHz. A zero bufSize
// selects DefaultBufferSize.
func New(cfg *serial.Config, kind protocol.Kind, tickHz uint32, bufSize int) *Link {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Link{
		cfg:     cfg,
		bufSize: bufSize,
		decoder: protocol.NewDecoder(kind, tickHz),
		samples: make(chan protocol.Sample, bufSize),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Connect opens the serial port and starts reading.
func (l *Link) Connect() error {
	port, err := serial.Open(l.cfg)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	// Drop whatever queued up before we were listening.
	if err := port.Flush(); err != nil {
		log.Printf("Error flushing serial port: %v", err)
	}
	if err := l.attach(port, true); err != nil {
		port.Close()
		return err
	}
	return nil
}

// Attach starts reading from an already open stream, such as a pipe fed by
// the simulator. The stream ending closes the samples channel.
func (l *Link) Attach(port io.ReadCloser) error {
	return l.attach(port, false)
}

func (l *Link) attach(port io.ReadCloser, eofIsTimeout bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return errors.New("already connected")
	}
	if l.ctx.Err() != nil {
		return errors.New("link closed")
	}

	l.port = port
	l.eofIsTimeout = eofIsTimeout
	l.started = true
	l.connected = true

	go l.readSamples(port)

	return nil
}

// Close stops reading and closes the port. The samples channel is closed
// once the reader has exited.
func (l *Link) Close() error {
	l.mu.Lock()
	l.cancel()
	port, started := l.port, l.started
	l.port = nil
	l.started = true
	l.connected = false
	l.mu.Unlock()

	if !started {
		close(l.samples)
		close(l.done)
	}

	var err error
	if port != nil {
		if err = port.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
	}
	<-l.done
	return err
}

// Samples returns the channel of decoded samples.
func (l *Link) Samples() <-chan protocol.Sample {
	return l.samples
}

// Done is closed when the reader exits.
func (l *Link) Done() <-chan struct{} {
	return l.done
}

// IsConnected returns whether the link is currently reading.
func (l *Link) IsConnected() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.connected
}

// Received returns the number of bytes decoded.
func (l *Link) Received() uint64 { return l.received.Load() }

// Dropped returns the number of samples discarded because the channel was
// full.
func (l *Link) Dropped() uint64 { return l.dropped.Load() }

// readSamples decodes every byte into a sample.
func (l *Link) readSamples(port io.Reader) {
	defer close(l.done)
	defer close(l.samples)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in readSamples: %v", r)
		}
	}()

	buf := make([]byte, readChunk)
	for {
		n, err := port.Read(buf)
		for _, b := range buf[:n] {
			l.received.Add(1)
			sample := l.decoder.Decode(b)

			// Never stall the reader: the firmware does not wait either.
			select {
			case l.samples <- sample:
			case <-l.ctx.Done():
				return
			default:
				l.dropped.Add(1)
			}
		}

		if l.ctx.Err() != nil {
			return
		}
		if err != nil {
			if errors.Is(err, io.EOF) && l.eofIsTimeout {
				continue
			}
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
				log.Printf("Error reading from serial port: %v", err)
			}
			l.mu.Lock()
			l.connected = false
			l.mu.Unlock()
			return
		}
	}
}

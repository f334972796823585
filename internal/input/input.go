// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a movement key is considered held after its
// last byte arrived. Terminals only report repeats, so this bridges the gap
// between auto-repeat bytes.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
// Left and Right are held keys; the rest are true only on the frame their
// byte arrived.
type Input struct {
	Left      bool
	Right     bool
	Shoot     bool // Space
	Pause     bool // P
	Music     bool // M
	Enter     bool
	Backspace bool
	Escape    bool
	Quit      bool // Q
	Interrupt bool // Ctrl-C
	Closed    bool // The underlying reader is gone
	Pressed   []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks held keys.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stop    sync.Once
	state   keyState
	pending []byte // Start of an escape sequence cut off by the last drain
	closed  bool
}

func newStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream until r fails or the stream is closed.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops the reader goroutine once its pending read returns.
func (s *Stream) Close() {
	s.stop.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	buf := s.pending
	s.pending = nil
	received := 0

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			received++
		default:
			break drain
		}
	}

	// Hold back a cut-off sequence for one frame. If nothing follows it,
	// the next read parses it as it is.
	if received > 0 && !s.closed {
		if n := partialEscape(buf); n > 0 {
			s.pending = append([]byte(nil), buf[len(buf)-n:]...)
			buf = buf[:len(buf)-n]
		}
	}

	in := parse(&s.state, buf, now)
	in.Closed = s.closed
	return in
}

// partialEscape reports how many trailing bytes of buf are an unfinished
// ESC or ESC [ prefix.
func partialEscape(buf []byte) int {
	switch n := len(buf); {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

// parse applies buf to the held-key state and reports this frame's keys.
func parse(state *keyState, buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			case 'A', 'B':
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A', 'j', 'J':
			state.left = now
		case 'd', 'D', 'l', 'L':
			state.right = now
		case ' ':
			in.Shoot = true
		case 'p', 'P':
			in.Pause = true
		case 'm', 'M':
			in.Music = true
		case 'q', 'Q':
			in.Quit = true
		case '\n', '\r':
			in.Enter = true
		case '\b', '\x7f':
			in.Backspace = true
		case '\x1b':
			in.Escape = true
		case '\x03':
			in.Interrupt = true
		}
	}

	in.Left = now.Sub(state.left) < keyHoldDuration
	in.Right = now.Sub(state.right) < keyHoldDuration
	return in
}

// Printable returns the printable ASCII bytes of in.Pressed, skipping
// escape sequences. Used for text entry.
func (in Input) Printable() []byte {
	var out []byte
	for i := 0; i < len(in.Pressed); i++ {
		b := in.Pressed[i]
		if b == '\x1b' && i+2 < len(in.Pressed) && in.Pressed[i+1] == '[' {
			i += 2
			continue
		}
		if b >= 0x20 && b < 0x7f {
			out = append(out, b)
		}
	}
	return out
}

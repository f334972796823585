package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// maxChunkSize caps single writes so frames stream smoothly over SSH.
const maxChunkSize = 1400

// Escape sequences used by the terminal frontends.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// writeChunked writes s to w in pieces of at most maxChunkSize bytes.
func writeChunked(w io.Writer, s string) error {
	for len(s) > 0 {
		n := min(len(s), maxChunkSize)
		if _, err := io.WriteString(w, s[:n]); err != nil {
			return err
		}
		s = s[n:]
	}
	return nil
}

// ChunkWriter collects one frame of terminal output (canvas cells and text
// overlays) and sends it with a single Flush. Positions passed to WriteAt
// are 1-based and relative to the render area; the offset of the render area
// inside the terminal is added automatically.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	num    [20]byte
	offCol int
	offRow int
}

var _ io.Writer = (*ChunkWriter)(nil)

// NewChunkWriter returns a frame writer for w with the render area at the
// given 0-based terminal offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the render area, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// Write appends raw bytes to the frame. Canvas output goes through here and
// already carries absolute cursor positions.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// Clear queues a full-screen clear.
func (cw *ChunkWriter) Clear() {
	cw.frame.WriteString(seqClear)
}

// WriteAt queues s at (col, row) of the render area.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	b := append(cw.num[:0], "\033["...)
	b = strconv.AppendInt(b, int64(row+cw.offRow), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col+cw.offCol), 10)
	b = append(b, 'H')
	cw.frame.Write(b)
	cw.frame.WriteString(s)
}

// WriteCentered queues s centered on centerCol and returns where it landed.
func (cw *ChunkWriter) WriteCentered(centerCol, row int, s string) (col, width int) {
	width = utf8.RuneCountInString(s)
	col = max(centerCol-width/2, 1)
	cw.WriteAt(col, row, s)
	return col, width
}

// Flush sends the queued frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	frame := cw.frame.String()
	cw.frame.Reset()
	if err := writeChunked(cw.out, frame); err != nil {
		return err
	}
	return cw.out.Flush()
}

// ClearScreen clears w and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// HideCursor hides the cursor on w.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the cursor on w.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}

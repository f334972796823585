package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	writes []int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, len(p))
	return len(p), nil
}

func TestWriteChunkedSplitsLargeFrames(t *testing.T) {
	var w countingWriter
	require.NoError(t, writeChunked(&w, strings.Repeat("x", 2*maxChunkSize+10)))
	assert.Equal(t, []int{maxChunkSize, maxChunkSize, 10}, w.writes)
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 1)

	cw.WriteAt(2, 5, "Score")
	assert.Empty(t, out.String(), "nothing is sent before Flush")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[6;5HScore", out.String())

	out.Reset()
	cw.SetOffset(0, 0)
	col, width := cw.WriteCentered(2, 1, "PAUSED")
	assert.Equal(t, 1, col)
	assert.Equal(t, 6, width)
	cw.Clear()
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[1;1HPAUSED"+seqClear, out.String())
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var buf bytes.Buffer
	c.RenderBorder(&buf)
	assert.Empty(t, buf.String(), "no border without spare room")

	c.SetOffset(2, 1)
	c.RenderBorder(&buf)
	out := buf.String()
	assert.Contains(t, out, "\033[1;2H┌────┐")
	assert.Contains(t, out, "\033[4;2H└────┘")
	assert.Contains(t, out, "\033[2;2H│")
	assert.Contains(t, out, "\033[3;7H│")
}

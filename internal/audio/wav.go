// Package audio assembles engine output into a WAV payload.
package audio

import (
	"errors"
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Concat merges sample chunks into one buffer in order. Empty chunks are
// dropped.
func Concat(chunks [][]float32) []float32 {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]float32, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// EncodeWAV encodes mono float32 samples as an in-memory WAV container
// (32-bit IEEE float).
func EncodeWAV(samples []float32, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, errors.New("no samples to encode")
	}

	ws := &bufferSeeker{}
	format := &gaudio.Format{SampleRate: sampleRate, NumChannels: 1}
	// audio format 3 is IEEE float
	enc := wav.NewEncoder(ws, format.SampleRate, 32, format.NumChannels, 3)

	for _, s := range samples {
		if err := enc.WriteFrame(s); err != nil {
			return nil, fmt.Errorf("write wav frame: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close wav encoder: %w", err)
	}

	return ws.Bytes(), nil
}

// bufferSeeker is an in-memory io.WriteSeeker. The wav encoder seeks back to
// patch chunk sizes on Close, which bytes.Buffer cannot do.
type bufferSeeker struct {
	buf []byte
	pos int
}

func (b *bufferSeeker) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.buf) {
		grown := make([]byte, need)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *bufferSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int
	switch whence {
	case io.SeekStart:
		next = int(offset)
	case io.SeekCurrent:
		next = b.pos + int(offset)
	case io.SeekEnd:
		next = len(b.buf) + int(offset)
	default:
		return 0, fmt.Errorf("unsupported whence %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("seek before start of buffer: %d", next)
	}
	b.pos = next
	return int64(next), nil
}

func (b *bufferSeeker) Bytes() []byte { return b.buf }

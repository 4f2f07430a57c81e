// Package tts defines the synthesis engine contract and the Kokoro runner
// implementation behind it.
package tts

import (
	"context"
	"errors"
)

// SampleRate is the fixed output rate of every engine. Kokoro outputs 24 kHz
// mono audio.
const SampleRate = 24000

// Segment is one chunk of mono float32 samples produced by an engine for a
// portion of the input text.
type Segment []float32

// ErrNoAudio reports that an engine completed without producing a single
// non-empty segment.
var ErrNoAudio = errors.New("no audio generated from text")

// Engine turns text into a finite stream of audio segments.
//
// The segment channel is closed when the stream ends; at most one error is
// delivered on the error channel, which is closed afterwards. The stream is
// single-pass and not restartable: callers drain it fully before responding.
type Engine interface {
	Synthesize(ctx context.Context, text, voice string) (<-chan Segment, <-chan error)
}

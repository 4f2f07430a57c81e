package tts

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strings"
)

// segmentSamples is the read granularity: 4800 samples is 200ms at 24 kHz.
const segmentSamples = 4800

// KokoroConfig holds configuration for the exec-based Kokoro engine.
type KokoroConfig struct {
	Bin  string // runner binary name or path
	Lang string // language code passed to every invocation
}

// KokoroEngine drives the Kokoro runner binary. Each Synthesize call spawns
// one runner process: the text goes in on stdin, raw little-endian float32
// PCM at 24 kHz mono comes back on stdout. Concurrent calls each get their
// own process, so no locking is needed here.
type KokoroEngine struct {
	bin  string
	lang string
}

// NewKokoroEngine resolves the runner binary up front so a missing install
// is caught at startup rather than on the first request.
func NewKokoroEngine(cfg KokoroConfig) (*KokoroEngine, error) {
	bin := cfg.Bin
	if bin == "" {
		bin = "kokoro-tts"
	}
	lang := cfg.Lang
	if lang == "" {
		lang = "a"
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("resolve kokoro runner: %w", err)
	}

	return &KokoroEngine{bin: path, lang: lang}, nil
}

func (e *KokoroEngine) Synthesize(ctx context.Context, text, voice string) (<-chan Segment, <-chan error) {
	segments := make(chan Segment)
	errs := make(chan error, 1)

	go func() {
		defer close(segments)
		defer close(errs)

		cmd := exec.CommandContext(ctx, e.bin, "--voice", voice, "--lang", e.lang)
		cmd.Stdin = strings.NewReader(text)

		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		stdout, err := cmd.StdoutPipe()
		if err != nil {
			errs <- fmt.Errorf("kokoro runner stdout: %w", err)
			return
		}
		if err := cmd.Start(); err != nil {
			errs <- fmt.Errorf("start kokoro runner: %w", err)
			return
		}

		buf := make([]byte, segmentSamples*4)
		for {
			n, readErr := io.ReadFull(stdout, buf)
			if n > 0 {
				// A trailing partial sample is dropped.
				seg := decodeSamples(buf[:n-n%4])
				if len(seg) > 0 {
					select {
					case segments <- seg:
					case <-ctx.Done():
						_ = cmd.Wait()
						errs <- ctx.Err()
						return
					}
				}
			}
			if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
				break
			}
			if readErr != nil {
				_ = cmd.Wait()
				errs <- fmt.Errorf("read kokoro output: %w", readErr)
				return
			}
		}

		if err := cmd.Wait(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				errs <- fmt.Errorf("kokoro runner: %w: %s", err, msg)
				return
			}
			errs <- fmt.Errorf("kokoro runner: %w", err)
		}
	}()

	return segments, errs
}

func decodeSamples(raw []byte) Segment {
	seg := make(Segment, len(raw)/4)
	for i := range seg {
		seg[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return seg
}

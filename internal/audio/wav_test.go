package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name   string
		chunks [][]float32
		want   []float32
	}{
		{
			name:   "order preserved",
			chunks: [][]float32{{1, 2}, {3}, {4, 5}},
			want:   []float32{1, 2, 3, 4, 5},
		},
		{
			name:   "empty chunks dropped",
			chunks: [][]float32{{}, {1}, nil, {2}},
			want:   []float32{1, 2},
		},
		{
			name:   "no chunks",
			chunks: nil,
			want:   []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(tt.chunks)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEncodeWAV(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 1, -1}

	data, err := EncodeWAV(samples, 24000)
	if err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}

	// RIFF/WAVE layout: 12-byte RIFF header, 24-byte fmt chunk, 8-byte data
	// chunk header, then 4 bytes per float32 sample.
	wantLen := 44 + 4*len(samples)
	if len(data) != wantLen {
		t.Fatalf("len = %d, want %d", len(data), wantLen)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("bad container magic: %q %q", data[0:4], data[8:12])
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 3 {
		t.Errorf("audio format = %d, want 3 (IEEE float)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 24000 {
		t.Errorf("sample rate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 32 {
		t.Errorf("bit depth = %d, want 32", got)
	}

	// RIFF size covers everything after the first 8 bytes.
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(len(data)-8) {
		t.Errorf("riff size = %d, want %d", got, len(data)-8)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(4*len(samples)) {
		t.Errorf("data size = %d, want %d", got, 4*len(samples))
	}

	for i, want := range samples {
		bits := binary.LittleEndian.Uint32(data[44+i*4:])
		if got := math.Float32frombits(bits); got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeWAV_NoSamples(t *testing.T) {
	if _, err := EncodeWAV(nil, 24000); err == nil {
		t.Error("expected error for empty sample buffer")
	}
}

func TestBufferSeeker(t *testing.T) {
	b := &bufferSeeker{}

	if _, err := b.Write([]byte("abcdef")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := b.Seek(2, 0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	// Overwrite in the middle without growing past the end.
	if _, err := b.Write([]byte("XY")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := string(b.Bytes()); got != "abXYef" {
		t.Errorf("Bytes() = %q, want %q", got, "abXYef")
	}

	if _, err := b.Seek(-1, 0); err == nil {
		t.Error("expected error for negative seek")
	}
}

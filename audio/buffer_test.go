package audio

import (
	"errors"
	"testing"
)

func TestNewBufferValidation(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		channels [][]float64
		want     error
	}{
		{"zero rate", 0, [][]float64{{0}}, ErrInvalidSampleRate},
		{"negative rate", -44100, [][]float64{{0}}, ErrInvalidSampleRate},
		{"no channels", 44100, nil, ErrNoChannels},
		{"ragged", 44100, [][]float64{{0, 1}, {0}}, ErrChannelLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuffer(tt.rate, tt.channels...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewBuffer() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBufferShape(t *testing.T) {
	b, err := NewSilence(8, 2, 16)
	if err != nil {
		t.Fatalf("NewSilence() error = %v", err)
	}

	if b.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", b.NumChannels())
	}

	if b.Frames() != 16 {
		t.Fatalf("Frames() = %d, want 16", b.Frames())
	}

	if b.Duration() != 2 {
		t.Fatalf("Duration() = %v, want 2", b.Duration())
	}

	if b.Channel(2) != nil {
		t.Fatal("Channel(2) should be nil for a stereo buffer")
	}
}

func TestNilBufferAccessors(t *testing.T) {
	var b *Buffer
	if b.Frames() != 0 || b.NumChannels() != 0 || b.Duration() != 0 {
		t.Fatal("nil buffer should report an empty shape")
	}
}

func TestFrameRangeFloors(t *testing.T) {
	b, _ := NewSilence(10, 1, 100)

	lo, hi := b.FrameRange(0.25, 0.5)
	if lo != 2 || hi != 7 {
		t.Fatalf("FrameRange() = [%d,%d), want [2,7)", lo, hi)
	}

	if !b.InRange(lo, hi) {
		t.Fatal("InRange() = false for an interior range")
	}

	if b.InRange(90, 101) {
		t.Fatal("InRange() = true past the end")
	}

	if b.InRange(-1, 3) {
		t.Fatal("InRange() = true before the start")
	}
}

func TestMixDownAveragesChannels(t *testing.T) {
	b, err := NewBuffer(4, []float64{1, 1, 1, 1}, []float64{0, -1, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}

	got := b.MixDown(nil, 1, 5)
	want := []float64{0, 0.75, 1, 0}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MixDown()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPoolReturnsZeroedSlices(t *testing.T) {
	p := NewPool()

	s := p.Get(8)
	for i := range s {
		s[i] = float64(i)
	}
	p.Put(s)

	s = p.Get(4)
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}

	for i, v := range s {
		if v != 0 {
			t.Fatalf("Get()[%d] = %v, want 0", i, v)
		}
	}
}

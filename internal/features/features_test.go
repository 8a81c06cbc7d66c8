package features

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-remix/audio"
	"github.com/cwbudde/algo-remix/dsp/window"
	"github.com/cwbudde/algo-remix/internal/testutil"
)

const sampleRate = 8000.0

func TestAnalyzeSine(t *testing.T) {
	buf, err := audio.NewBuffer(sampleRate, testutil.DeterministicSine(1000, sampleRate, 0.5, int(sampleRate)))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Analyze(buf, 0, 0.5, window.TypeHann)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(s.Magnitude) != 4096/2+1 || s.BinHz() != sampleRate/4096 {
		t.Fatalf("spectrum has %d bins of %v Hz", len(s.Magnitude), s.BinHz())
	}

	st := s.Stats()
	testutil.RequireNearlyEqual(t, st.Centroid, 1000, 100, "centroid")
	testutil.RequireNearlyEqual(t, float64(st.MaxBin)*s.BinHz(), 1000, 2*s.BinHz(), "peak")
	testutil.RequireNearlyEqual(t, s.Rolloff(0.5), 1000, 10, "rolloff")

	if st.Bandwidth <= 0 || st.Bandwidth > 20 {
		t.Fatalf("bandwidth = %v Hz, want a narrow peak", st.Bandwidth)
	}
}

func TestAnalyzeWindowLeakage(t *testing.T) {
	// 1001 Hz does not fall on a bin; the rectangular window leaks far more
	// energy away from the peak than Blackman.
	buf, _ := audio.NewBuffer(sampleRate, testutil.DeterministicSine(1001, sampleRate, 0.5, 4096))

	rect, _ := Analyze(buf, 0, 0.512, window.TypeRectangular)
	black, _ := Analyze(buf, 0, 0.512, window.TypeBlackman)

	if !(rect.Stats().Spread > black.Stats().Spread) {
		t.Fatalf("spread: rectangular %v, blackman %v", rect.Stats().Spread, black.Stats().Spread)
	}
}

func TestAnalyzeSilenceAndOutOfRange(t *testing.T) {
	buf, _ := audio.NewSilence(sampleRate, 2, 1000)

	s, err := Analyze(buf, 0, 0.1, window.TypeHann)
	if err != nil {
		t.Fatal(err)
	}

	st := s.Stats()
	if st.Centroid != 0 || st.Flatness != 0 || s.Rolloff(0.85) != 0 {
		t.Fatalf("silence: %+v", st)
	}

	if s, _ := Analyze(buf, 10, 1, window.TypeHann); len(s.Magnitude) != 0 || s.BinHz() != 0 {
		t.Fatalf("outside the buffer: %d bins", len(s.Magnitude))
	}
}

func TestAnalyzeCancelledStereo(t *testing.T) {
	// The right channel is the negated left one, so the mono mix is silent.
	buf := testutil.StereoBuffer(sampleRate, testutil.DeterministicSine(1000, sampleRate, 0.5, 4000))

	s, err := Analyze(buf, 0, 0.5, window.TypeHann)
	if err != nil || s.Stats().Centroid != 0 {
		t.Fatalf("centroid = %v, %v; want 0", s.Stats().Centroid, err)
	}
}

func TestAnalyzeLongSpanUsesCentreWindow(t *testing.T) {
	n := 3 * MaxSpectrumFrames
	buf, _ := audio.NewBuffer(sampleRate, testutil.DeterministicSine(250, sampleRate, 0.5, n))

	s, err := Analyze(buf, 0, float64(n)/sampleRate, window.TypeHann)
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Magnitude) != MaxSpectrumFrames/2+1 {
		t.Fatalf("got %d bins, want %d", len(s.Magnitude), MaxSpectrumFrames/2+1)
	}
}

func TestLevel(t *testing.T) {
	buf, _ := audio.NewBuffer(4, []float64{1, -1, 1, -1, 0.5, 0.5}, []float64{1, -1, 1, -1, -0.5, -0.5})

	st := Level(buf, 0, 1)
	if st.Length != 4 || st.RMS != 1 || st.Peak != 1 || st.ZeroCrossingRate() != 1 {
		t.Fatalf("Level(0, 1) = %+v", st)
	}

	// The last two frames cancel in the mono mix; the span is clamped to
	// the buffer.
	if st := Level(buf, 1, 10); st.Length != 2 || st.RMS != 0 {
		t.Fatalf("Level(1, 10) = %+v", st)
	}

	if st := Level(buf, 5, 1); st.Length != 0 {
		t.Fatalf("Level outside buffer = %+v", st)
	}

	sine, _ := audio.NewBuffer(sampleRate, testutil.DeterministicSine(500, sampleRate, 0.5, int(sampleRate)))
	testutil.RequireNearlyEqual(t, Level(sine, 0, 1).RMS, 0.5/math.Sqrt2, 1e-9, "rms")
}

func TestNextPow2(t *testing.T) {
	for _, tt := range [][2]int{{1, 1}, {2, 2}, {3, 4}, {4000, 4096}, {4096, 4096}} {
		if got := nextPow2(tt[0]); got != tt[1] {
			t.Fatalf("nextPow2(%d) = %d, want %d", tt[0], got, tt[1])
		}
	}
}

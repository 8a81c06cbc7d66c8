package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/audio"
)

// maxDataSize keeps ChunkSize (36 + data) within uint32.
const maxDataSize = math.MaxUint32 - 36

// Encoder writes spans of Buffer as a WAV stream.
type Encoder struct {
	Buffer *audio.Buffer
}

// Render encodes quanta in sequence order. Every quantum must resolve to the
// same buffer through Quantum.Buffer.
func Render(quanta []*analysis.Quantum) ([]byte, error) {
	if len(quanta) == 0 {
		return nil, ErrNoQuanta
	}

	buf := quanta[0].Buffer()
	if buf == nil {
		return nil, fmt.Errorf("%w: quantum 0 has no buffer", ErrOutOfRange)
	}

	for i, q := range quanta[1:] {
		if q.Buffer() != buf {
			return nil, fmt.Errorf("%w: quantum %d is bound to another buffer", ErrOutOfRange, i+1)
		}
	}

	return RenderSpans(analysis.Spans(quanta), buf)
}

// RenderSpans encodes spans of buf in order.
func RenderSpans(spans []analysis.Span, buf *audio.Buffer) ([]byte, error) {
	var out bytes.Buffer
	if _, err := (Encoder{Buffer: buf}).Encode(&out, spans); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Encode writes the header and the frames of every span to w and returns
// the number of bytes written. Ranges are validated before anything is
// written.
func (e Encoder) Encode(w io.Writer, spans []analysis.Span) (int64, error) {
	buf := e.Buffer
	if buf == nil || buf.NumChannels() == 0 {
		return 0, fmt.Errorf("%w: no buffer", ErrOutOfRange)
	}

	if len(spans) == 0 {
		return 0, ErrNoQuanta
	}

	type frameRange struct{ lo, hi int }

	ranges := make([]frameRange, len(spans))
	frames := 0

	for i, s := range spans {
		lo, hi := buf.FrameRange(s.Start, s.Duration)
		if !buf.InRange(lo, hi) {
			return 0, fmt.Errorf("%w: span %d covers frames [%d, %d) of %d",
				ErrOutOfRange, i, lo, hi, buf.Frames())
		}

		ranges[i] = frameRange{lo, hi}
		frames += hi - lo
	}

	channels := buf.NumChannels()

	dataSize := uint64(frames) * uint64(channels) * bytesPerValue
	if dataSize > maxDataSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrTooLarge, dataSize)
	}

	bw := bufio.NewWriter(w)

	hdr := newHeader(channels, uint32(math.Round(buf.SampleRate)), uint32(dataSize))
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return 0, fmt.Errorf("wav: write header: %w", err)
	}

	scratch := make([]byte, 0, 4096)

	for _, r := range ranges {
		for i := r.lo; i < r.hi; i++ {
			for ch := 0; ch < channels; ch++ {
				scratch = binary.LittleEndian.AppendUint16(scratch, uint16(PCM16(buf.Channels[ch][i])))
			}

			if len(scratch) >= 4096-2*channels {
				if _, err := bw.Write(scratch); err != nil {
					return 0, fmt.Errorf("wav: write samples: %w", err)
				}

				scratch = scratch[:0]
			}
		}
	}

	if _, err := bw.Write(scratch); err != nil {
		return 0, fmt.Errorf("wav: write samples: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("wav: flush: %w", err)
	}

	return HeaderSize + int64(dataSize), nil
}

// PCM16 converts a float sample to 16-bit PCM: s*32768 clipped to
// [-32768, 32767] and truncated toward zero. NaN maps to 0.
func PCM16(s float64) int16 {
	v := s * 32768

	switch {
	case math.IsNaN(v):
		return 0
	case v < math.MinInt16:
		v = math.MinInt16
	case v > math.MaxInt16:
		v = math.MaxInt16
	}

	return int16(v)
}

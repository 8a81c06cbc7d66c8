package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-remix/audio"
)

// maxDecodeSize caps the data chunk accepted by Decode.
const maxDecodeSize = 1 << 30

// Decode reads a 16-bit integer PCM WAV stream. Chunks other than "fmt "
// and "data" are skipped.
func Decode(r io.Reader) (*audio.Buffer, error) {
	var riff struct {
		ChunkID   [4]byte
		ChunkSize uint32
		Format    [4]byte
	}

	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return nil, fmt.Errorf("%w: read RIFF header: %w", ErrMalformed, err)
	}

	if string(riff.ChunkID[:]) != "RIFF" || string(riff.Format[:]) != "WAVE" {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrUnsupportedFormat)
	}

	var (
		format   header
		fmtFound bool
	)

	for {
		var chunk struct {
			ID   [4]byte
			Size uint32
		}

		if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: data chunk not found", ErrMalformed)
			}

			return nil, fmt.Errorf("%w: read chunk header: %w", ErrMalformed, err)
		}

		switch string(chunk.ID[:]) {
		case "fmt ":
			if err := readFormat(r, chunk.Size, &format); err != nil {
				return nil, err
			}

			fmtFound = true

		case "data":
			if !fmtFound {
				return nil, fmt.Errorf("%w: data chunk before fmt chunk", ErrMalformed)
			}

			return readData(r, chunk.Size, format)

		default:
			// Chunks are padded to an even size.
			skip := int64(chunk.Size) + int64(chunk.Size&1)
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, fmt.Errorf("%w: skip %q chunk: %w", ErrMalformed, chunk.ID[:], err)
			}
		}
	}
}

func readFormat(r io.Reader, size uint32, h *header) error {
	if size < fmtChunkSize {
		return fmt.Errorf("%w: fmt chunk of %d bytes", ErrMalformed, size)
	}

	var f struct {
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}

	if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
		return fmt.Errorf("%w: read fmt chunk: %w", ErrMalformed, err)
	}

	extra := int64(size-fmtChunkSize) + int64(size&1)
	if _, err := io.CopyN(io.Discard, r, extra); err != nil {
		return fmt.Errorf("%w: read fmt chunk: %w", ErrMalformed, err)
	}

	if f.AudioFormat != formatPCM || f.BitsPerSample != bitsPerSample {
		return fmt.Errorf("%w: format %d with %d bits per sample",
			ErrUnsupportedFormat, f.AudioFormat, f.BitsPerSample)
	}

	if f.NumChannels == 0 || f.SampleRate == 0 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrMalformed, f.NumChannels, f.SampleRate)
	}

	blockAlign := int(f.NumChannels) * bytesPerValue
	if blockAlign > math.MaxUint16 {
		return fmt.Errorf("%w: %d channels overflow the block align", ErrMalformed, f.NumChannels)
	}

	h.AudioFormat = f.AudioFormat
	h.NumChannels = f.NumChannels
	h.SampleRate = f.SampleRate
	h.BitsPerSample = f.BitsPerSample
	h.BlockAlign = uint16(blockAlign)

	return nil
}

func readData(r io.Reader, size uint32, h header) (*audio.Buffer, error) {
	if size > maxDecodeSize {
		return nil, fmt.Errorf("%w: data chunk of %d bytes", ErrTooLarge, size)
	}

	if h.BlockAlign == 0 {
		return nil, fmt.Errorf("%w: zero block align", ErrMalformed)
	}

	if size%uint32(h.BlockAlign) != 0 {
		return nil, fmt.Errorf("%w: data size %d not aligned to %d-byte frames",
			ErrMalformed, size, h.BlockAlign)
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: read data chunk: %w", ErrMalformed, err)
	}

	numCh := int(h.NumChannels)
	frames := int(size) / int(h.BlockAlign)

	channels := make([][]float64, numCh)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < numCh; ch++ {
			off := (i*numCh + ch) * bytesPerValue
			channels[ch][i] = float64(int16(binary.LittleEndian.Uint16(raw[off:]))) / 32768
		}
	}

	buf, err := audio.NewBuffer(float64(h.SampleRate), channels...)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	return buf, nil
}

package wav

// HeaderSize is the size of the canonical header in bytes.
const HeaderSize = 44

const (
	formatPCM     = 1
	bitsPerSample = 16
	bytesPerValue = bitsPerSample / 8
	fmtChunkSize  = 16
)

// header is the canonical RIFF/WAVE header. Its binary.LittleEndian
// encoding is exactly HeaderSize bytes.
type header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

func newHeader(channels int, sampleRate uint32, dataSize uint32) header {
	blockAlign := uint16(channels * bytesPerValue)

	return header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       fmtChunkSize,
		AudioFormat:   formatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
}

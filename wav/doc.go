// Package wav renders sequences of quanta into canonical 16-bit PCM WAV
// streams and decodes such streams back into audio buffers.
//
// The stream is a 44-byte RIFF header followed by interleaved
// little-endian samples. Each quantum contributes the frames
// [floor(start*sr), floor((start+duration)*sr)) of its buffer; samples are
// scaled by 32768, clipped to the int16 range and truncated toward zero.
package wav

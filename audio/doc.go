// Package audio holds decoded sample data shared by the quanta of an
// analysis. Decoding itself happens elsewhere (see package wav for a PCM16
// reader); Buffer only stores per-channel float64 samples in [-1, 1] and the
// sample rate needed to map quantum times onto frame indices.
package audio

package analysis

import "github.com/cwbudde/algo-remix/internal/vector"

const (
	// MergeConfidence is the confidence below which a segment may be
	// folded into its predecessor.
	MergeConfidence = 0.3
	// MergeTimbreDistance is the Euclidean timbre distance below which two
	// segments count as similar.
	MergeTimbreDistance = 1.0
)

// MergeSegments returns the fsegment list for segs: consecutive segments
// with confidence < MergeConfidence and timbre within MergeTimbreDistance of
// the last accepted segment are folded into it. The accepted segments are
// copies; segs is not modified.
func MergeSegments(segs []*Quantum) []*Quantum {
	return mergeSegments(segs)
}

func mergeSegments(segs []*Quantum) []*Quantum {
	if len(segs) == 0 {
		return nil
	}

	out := []*Quantum{segs[0].clone()}
	for _, seg := range segs[1:] {
		last := out[len(out)-1]
		if seg.Confidence < MergeConfidence && similarTimbre(seg, last) {
			last.Duration += seg.Duration
			last.End = last.Start + last.Duration

			continue
		}

		out = append(out, seg.clone())
	}

	return out
}

func similarTimbre(a, b *Quantum) bool {
	if len(a.Timbre) != len(b.Timbre) {
		return false
	}

	return vector.Euclidean(a.Timbre, b.Timbre) < MergeTimbreDistance
}

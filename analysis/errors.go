package analysis

import "errors"

// ErrMalformedAnalysis reports a payload that cannot be turned into quanta:
// an empty or non-ascending event level, a non-positive span, or a pitch or
// timbre vector whose length is not VectorLen.
var ErrMalformedAnalysis = errors.New("analysis: malformed analysis")

package features

import (
	"github.com/cwbudde/algo-remix/audio"
	timestats "github.com/cwbudde/algo-remix/stats/time"
)

// Level returns the time-domain statistics of the mono mix of buf over
// [start, start+duration).
func Level(buf *audio.Buffer, start, duration float64) timestats.Stats {
	lo, hi := clampRange(buf, start, duration)
	if hi <= lo {
		return timestats.Stats{}
	}

	mono := monoPool.Get(hi - lo)
	defer monoPool.Put(mono)

	return timestats.Calculate(buf.MixDown(mono, lo, hi))
}

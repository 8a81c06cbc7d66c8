package audio

import "sync"

// Pool provides sync.Pool-based reuse of mono scratch slices for feature
// extraction over many quanta.
type Pool struct {
	pool sync.Pool
}

type scratch struct {
	data []float64
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &scratch{}
			},
		},
	}
}

// Get returns a zeroed slice with the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) []float64 {
	s := p.pool.Get().(*scratch)
	if length < 0 {
		length = 0
	}

	if cap(s.data) < length {
		s.data = make([]float64, length)
	} else {
		s.data = s.data[:length]
		for i := range s.data {
			s.data[i] = 0
		}
	}

	return s.data
}

// Put returns a slice obtained from Get to the pool.
// The caller must not use the slice after calling Put.
func (p *Pool) Put(data []float64) {
	if data == nil {
		return
	}

	p.pool.Put(&scratch{data: data[:0]})
}

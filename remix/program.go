package remix

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-remix/analysis"
)

var (
	// ErrDuplicateProgram is returned when a name is registered twice.
	ErrDuplicateProgram = errors.New("remix: program already registered")
	// ErrUnknownProgram is returned by Lookup for unregistered names.
	ErrUnknownProgram = errors.New("remix: unknown program")
	// ErrNilProgram is returned when registering a nil program.
	ErrNilProgram = errors.New("remix: nil program")
	// ErrEmptyRemix is returned when a program emits no playable span.
	ErrEmptyRemix = errors.New("remix: program produced no spans")
	// ErrInvalidProgram is returned for declarative programs that fail to
	// parse or validate.
	ErrInvalidProgram = errors.New("remix: invalid program")
	// ErrNotClustered is returned by programs that need cluster labels when
	// the segments have none.
	ErrNotClustered = errors.New("remix: segments are not clustered")
)

// Program computes the spans of a remix.
type Program interface {
	Name() string
	Run(a *analysis.Analysis) ([]analysis.Span, error)
}

type funcProgram struct {
	name string
	fn   func(*analysis.Analysis) ([]analysis.Span, error)
}

func (p funcProgram) Name() string { return p.name }

func (p funcProgram) Run(a *analysis.Analysis) ([]analysis.Span, error) { return p.fn(a) }

// Func adapts a function to the Program interface.
func Func(name string, fn func(*analysis.Analysis) ([]analysis.Span, error)) Program {
	return funcProgram{name: name, fn: fn}
}

// Run executes p and drops spans without duration. It fails with
// ErrEmptyRemix when nothing playable is left.
func Run(p Program, a *analysis.Analysis) ([]analysis.Span, error) {
	if p == nil {
		return nil, ErrNilProgram
	}

	if a == nil {
		return nil, fmt.Errorf("remix: %s: %w: nil analysis", p.Name(), analysis.ErrMalformedAnalysis)
	}

	spans, err := p.Run(a)
	if err != nil {
		return nil, fmt.Errorf("remix: %s: %w", p.Name(), err)
	}

	out := spans[:0:0]
	for _, s := range spans {
		if s.Duration > 0 {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRemix, p.Name())
	}

	return out, nil
}

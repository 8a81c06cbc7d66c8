package remix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/dsp/window"
	"github.com/cwbudde/algo-remix/selection"
	"github.com/cwbudde/algo-remix/sorting"
	"github.com/cwbudde/algo-remix/stats/frequency"
)

// Document is the YAML form of a declarative program:
//
//	name: downbeats
//	level: beats
//	where:
//	  - ordinal: 1
//	  - overlap_range: [10, 30]
//	sort: {key: timbre, index: 1, descending: true}
//	reverse: false
//	limit: 16
//	repeat: 2
type Document struct {
	Name    string      `yaml:"name" validate:"max=64"`
	Level   string      `yaml:"level" validate:"required,oneof=sections bars beats tatums segments fsegments"`
	Where   []Condition `yaml:"where" validate:"dive"`
	Sort    *SortSpec   `yaml:"sort"`
	Reverse bool        `yaml:"reverse"`
	Limit   int         `yaml:"limit" validate:"gte=0"`
	Repeat  int         `yaml:"repeat" validate:"gte=0,lte=64"`
}

// Condition is one filter. Exactly one field must be set.
type Condition struct {
	Ordinal          *int      `yaml:"ordinal" validate:"omitempty,gte=1"`
	OverlapRange     []float64 `yaml:"overlap_range" validate:"omitempty,len=2"`
	ContainedByRange []float64 `yaml:"contained_by_range" validate:"omitempty,len=2"`
	ContainsPoint    *float64  `yaml:"contains_point"`
	PitchMax         *int      `yaml:"pitch_max" validate:"omitempty,gte=0,lte=11"`
	PitchMaxIn       []int     `yaml:"pitch_max_in" validate:"omitempty,min=1,max=12,dive,gte=0,lte=11"`
	Cluster          *int      `yaml:"cluster" validate:"omitempty,gte=0"`
	MinConfidence    *float64  `yaml:"min_confidence" validate:"omitempty,gte=0,lte=1"`
}

// SortSpec orders the selection. Index applies to the timbre and pitch keys,
// Fraction to rolloff. The audio keys (centroid, spread, flatness,
// bandwidth, rolloff, rms, peak, crest, zcr) measure the analysis buffer and
// key as 0 without one; the spectral ones use Window, Hann by default.
type SortSpec struct {
	Key        string  `yaml:"key" validate:"required,oneof=confidence duration start loudness noisiness timbre pitch centroid spread flatness bandwidth rolloff rms peak crest zcr"`
	Index      int     `yaml:"index" validate:"gte=0,lte=11"`
	Fraction   float64 `yaml:"fraction" validate:"gte=0,lte=1"`
	Window     string  `yaml:"window" validate:"omitempty,oneof=rectangular hann hamming blackman blackman-harris"`
	Descending bool    `yaml:"descending"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Declarative is a compiled Document.
type Declarative struct {
	doc        Document
	predicates []analysis.Predicate
	key        analysis.Key
}

var _ Program = (*Declarative)(nil)

// ParseProgram parses and validates a YAML program. Unknown fields are
// rejected.
func ParseProgram(data []byte) (*Declarative, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProgram)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}

	return Compile(doc)
}

// LoadProgram reads and parses a YAML program file. A program without a
// name is named after its path.
func LoadProgram(path string) (*Declarative, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("remix: read program: %w", err)
	}

	p, err := ParseProgram(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if p.doc.Name == "" {
		p.doc.Name = path
	}

	return p, nil
}

// Compile validates doc and builds its predicates and sort key.
func Compile(doc Document) (*Declarative, error) {
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("%w: %s fails %q (value %v)",
				ErrInvalidProgram, fe.Namespace(), fe.Tag(), fe.Value())
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}

	p := &Declarative{doc: doc}

	for i, c := range doc.Where {
		pred, err := c.predicate()
		if err != nil {
			return nil, fmt.Errorf("%w: where[%d]: %w", ErrInvalidProgram, i, err)
		}

		p.predicates = append(p.predicates, pred)
	}

	if doc.Sort != nil {
		p.key = sortKey(*doc.Sort)
	}

	return p, nil
}

// Name returns the document name, or "dsl" when it has none.
func (p *Declarative) Name() string {
	if p.doc.Name == "" {
		return "dsl"
	}

	return p.doc.Name
}

// Document returns the source document.
func (p *Declarative) Document() Document {
	return p.doc
}

// Run filters, orders, truncates and repeats the selected level.
func (p *Declarative) Run(a *analysis.Analysis) ([]analysis.Span, error) {
	list := a.FSegments
	if p.doc.Level != "fsegments" {
		k, err := analysis.ParseKind(p.doc.Level)
		if err != nil {
			return nil, err
		}

		list = a.Level(k)
	}

	list = list.FilterAll(p.predicates...)

	if p.key != nil {
		list = list.SortBy(p.key, p.doc.Sort.Descending)
	}

	if p.doc.Reverse {
		list = list.Reverse()
	}

	spans := list.Spans()
	if p.doc.Limit > 0 && len(spans) > p.doc.Limit {
		spans = spans[:p.doc.Limit]
	}

	repeat := max(p.doc.Repeat, 1)
	out := make([]analysis.Span, 0, len(spans)*repeat)
	for range repeat {
		out = append(out, spans...)
	}

	return out, nil
}

func (c Condition) predicate() (analysis.Predicate, error) {
	var (
		preds []analysis.Predicate
		names []string
	)

	add := func(name string, p analysis.Predicate) {
		names = append(names, name)
		preds = append(preds, p)
	}

	if c.Ordinal != nil {
		add("ordinal", selection.OrdinalWithinGroup(*c.Ordinal))
	}

	if c.OverlapRange != nil {
		r, err := interval(c.OverlapRange)
		if err != nil {
			return nil, fmt.Errorf("overlap_range: %w", err)
		}

		add("overlap_range", selection.OverlapRange(r[0], r[1]))
	}

	if c.ContainedByRange != nil {
		r, err := interval(c.ContainedByRange)
		if err != nil {
			return nil, fmt.Errorf("contained_by_range: %w", err)
		}

		add("contained_by_range", selection.ContainedByRange(r[0], r[1]))
	}

	if c.ContainsPoint != nil {
		add("contains_point", selection.ContainsPoint(*c.ContainsPoint))
	}

	if c.PitchMax != nil {
		add("pitch_max", selection.HasPitchMax(*c.PitchMax))
	}

	if c.PitchMaxIn != nil {
		add("pitch_max_in", selection.HasMaxPitchIn(c.PitchMaxIn...))
	}

	if c.Cluster != nil {
		add("cluster", selection.InCluster(*c.Cluster))
	}

	if c.MinConfidence != nil {
		add("min_confidence", selection.MinConfidence(*c.MinConfidence))
	}

	switch len(preds) {
	case 0:
		return nil, errors.New("condition sets no field")
	case 1:
		return preds[0], nil
	default:
		return nil, fmt.Errorf("condition sets %d fields %v, want one", len(preds), names)
	}
}

func interval(r []float64) ([2]float64, error) {
	if len(r) != 2 || r[0] > r[1] {
		return [2]float64{}, fmt.Errorf("want [start, end] with start <= end, got %v", r)
	}

	return [2]float64{r[0], r[1]}, nil
}

func sortKey(s SortSpec) analysis.Key {
	var opts []sorting.AudioOption
	if s.Window != "" {
		if t, err := window.ParseType(s.Window); err == nil {
			opts = append(opts, sorting.WithWindow(t))
		}
	}

	switch s.Key {
	case "confidence":
		return sorting.Confidence
	case "duration":
		return sorting.Duration
	case "start":
		return sorting.Start
	case "loudness":
		return sorting.Loudness
	case "noisiness":
		return sorting.Noisiness
	case "timbre":
		return sorting.TimbreValue(s.Index)
	case "pitch":
		return sorting.PitchValue(s.Index)
	case "centroid":
		return sorting.SpectralCentroid(nil, opts...)
	case "spread":
		return sorting.SpectralSpread(nil, opts...)
	case "flatness":
		return sorting.SpectralFlatness(nil, opts...)
	case "bandwidth":
		return sorting.SpectralBandwidth(nil, opts...)
	case "rolloff":
		fraction := s.Fraction
		if fraction == 0 {
			fraction = frequency.DefaultRolloff
		}

		return sorting.SpectralRolloff(nil, fraction, opts...)
	case "rms":
		return sorting.RMS(nil)
	case "peak":
		return sorting.Peak(nil)
	case "crest":
		return sorting.CrestFactor(nil)
	case "zcr":
		return sorting.ZeroCrossingRate(nil)
	default:
		return nil
	}
}

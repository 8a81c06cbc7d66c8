package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/audio"
	"github.com/cwbudde/algo-remix/cluster"
	"github.com/cwbudde/algo-remix/remix"
	"github.com/cwbudde/algo-remix/wav"
)

type runOptions struct {
	analysisPath string
	audioPath    string
	program      string
	dslPath      string
	outPath      string
	clusters     int
	seed         int64
	parallel     bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a remix program and render or print its spans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.analysisPath, "analysis", "", "analysis JSON file")
	f.StringVar(&opts.audioPath, "audio", "", "16-bit PCM WAV of the analysed track")
	f.StringVarP(&opts.program, "program", "p", "one", "built-in program name (see 'remix list')")
	f.StringVar(&opts.dslPath, "dsl", "", "YAML program file; overrides --program")
	f.StringVarP(&opts.outPath, "out", "o", "", "output WAV file; without it the spans are printed")
	f.IntVar(&opts.clusters, "clusters", 0, "cluster segments into this many classes before running")
	f.Int64Var(&opts.seed, "seed", 1, "seed for the initial cluster assignment")
	f.BoolVar(&opts.parallel, "parallel", false, "compute cluster centroids concurrently")
	_ = cmd.MarkFlagRequired("analysis")

	return cmd
}

func (a *app) run(cmd *cobra.Command, opts runOptions) error {
	if opts.outPath != "" && opts.audioPath == "" {
		return errors.New("--out needs --audio")
	}

	var buf *audio.Buffer
	if opts.audioPath != "" {
		b, err := loadAudio(opts.audioPath)
		if err != nil {
			return err
		}

		buf = b
		a.logger.Info("audio loaded", "path", opts.audioPath,
			"sample_rate", buf.SampleRate, "channels", buf.NumChannels(), "seconds", buf.Duration())
	}

	an, err := loadAnalysis(opts.analysisPath, buf)
	if err != nil {
		return err
	}

	if opts.clusters > 0 {
		res, err := cluster.KMeans(cmd.Context(), an.Segments, opts.clusters,
			cluster.WithSeed(opts.seed),
			cluster.WithParallel(opts.parallel),
			cluster.WithLogger(a.logger),
		)
		if err != nil {
			return err
		}

		a.logger.Info("segments clustered", "k", opts.clusters, "passes", res.Passes,
			"converged", res.Converged, "sizes", res.Sizes)
	}

	prog, err := resolveProgram(opts)
	if err != nil {
		return err
	}

	spans, err := remix.Run(prog, an)
	if err != nil {
		return err
	}

	a.logger.Info("program finished", "program", prog.Name(), "spans", len(spans))

	if opts.outPath == "" {
		out := cmd.OutOrStdout()
		for _, s := range spans {
			if _, err := fmt.Fprintf(out, "%.6f\t%.6f\n", s.Start, s.Duration); err != nil {
				return err
			}
		}

		return nil
	}

	data, err := wav.RenderSpans(spans, buf)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outPath, err)
	}

	a.logger.Info("remix written", "path", opts.outPath, "bytes", len(data))

	return nil
}

func resolveProgram(opts runOptions) (remix.Program, error) {
	if opts.dslPath != "" {
		return remix.LoadProgram(opts.dslPath)
	}

	return remix.Default.Lookup(opts.program)
}

func loadAnalysis(path string, buf *audio.Buffer) (*analysis.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open analysis: %w", err)
	}
	defer f.Close()

	an, err := analysis.Load(f, analysis.WithBuffer(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return an, nil
}

func loadAudio(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	buf, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return buf, nil
}

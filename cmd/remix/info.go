package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var analysisPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print track metadata and level sizes of an analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := loadAnalysis(analysisPath, nil)
			if err != nil {
				return err
			}

			a.logger.Debug("analysis loaded", "path", analysisPath, "segments", an.Segments.Len())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "duration\t%.3fs\n", an.Duration)
			fmt.Fprintf(tw, "tempo\t%.2f BPM\n", an.Tempo)
			fmt.Fprintf(tw, "time signature\t%d\n", an.TimeSignature)
			fmt.Fprintf(tw, "key\t%d (mode %d)\n", an.Key, an.Mode)
			fmt.Fprintf(tw, "fade in/out\t%.3fs / %.3fs\n", an.EndOfFadeIn, an.StartOfFadeOut)

			for _, l := range an.Levels() {
				fmt.Fprintf(tw, "%s\t%d\n", l.Kind().Plural(), l.Len())
			}

			fmt.Fprintf(tw, "fsegments\t%d\n", an.FSegments.Len())

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&analysisPath, "analysis", "", "analysis JSON file")
	_ = cmd.MarkFlagRequired("analysis")

	return cmd
}

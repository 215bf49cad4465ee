package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/school-calendar/internal/config"
	"github.com/username/school-calendar/internal/extract"
	"github.com/username/school-calendar/internal/source"
)

// explainCmd prints the classification of every line, for tuning marker
// vocabularies against a new layout
func explainCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "explain <file|url>",
		Short: "Show how each line of a calendar document is classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fetcher := source.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, logger)
			doc, err := fetcher.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			extractor := extract.NewExtractor(extractOptions(cfg), logger)
			extractor.SetObserver(func(page, line int, text string, kind extract.LineKind, state extract.SectionState) {
				if kind == extract.LineIgnored && !all {
					return
				}
				fmt.Fprintf(out, "%3d:%-4d %-14s %-15s %s\n", page, line, kind, state, text)
			})

			res, err := extractor.Run(doc)
			if err != nil {
				return fmt.Errorf("failed to extract %s: %w", args[0], err)
			}

			fmt.Fprintf(out, "\n%d event(s), %d holiday(s)\n", len(res.EventList()), len(res.HolidayList()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include lines that were ignored")

	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/school-calendar/internal/config"
	"github.com/username/school-calendar/internal/export"
	"github.com/username/school-calendar/internal/extract"
	"github.com/username/school-calendar/internal/source"
	"go.uber.org/zap"
)

func extractCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "extract <file|url>",
		Short: "Extract events and holidays from a calendar document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if format == "" {
				format = cfg.Output.Format
			}
			outFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			fetcher := source.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, logger)
			doc, err := fetcher.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			extractor := extract.NewExtractor(extractOptions(cfg), logger)
			res, err := extractor.Run(doc)
			if err != nil {
				return fmt.Errorf("failed to extract %s: %w", args[0], err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
					return fmt.Errorf("failed to create output path: %w", err)
				}
				f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := export.Write(w, res, outFormat, export.Options{}); err != nil {
				return fmt.Errorf("failed to write %s output: %w", outFormat, err)
			}

			logger.Info("Extraction written",
				zap.String("file", args[0]),
				zap.String("format", string(outFormat)),
				zap.String("output", output),
				zap.Int("entries", res.Len()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or ics (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file instead of stdout")

	return cmd
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/school-calendar/internal/config"
	"github.com/username/school-calendar/internal/extract"
	"github.com/username/school-calendar/internal/schoolyear"
	"github.com/username/school-calendar/internal/source"
)

func daysCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "days <file|url>",
		Short: "Count school days per month, or list the days of one month",
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

			res, err := extract.NewExtractor(extractOptions(cfg), logger).Run(doc)
			if err != nil {
				return fmt.Errorf("failed to extract %s: %w", args[0], err)
			}

			sy, err := schoolyear.New(res, schoolyear.Options{
				BeginEvent: cfg.Events.TermBegin,
				EndEvent:   cfg.Events.TermEnd,
			}, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if monthFlag != "" {
				month, err := time.Parse("2006-01", monthFlag)
				if err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM: %w", monthFlag, err)
				}
				info, err := sy.GetMonthInfo(month.Year(), month.Month())
				if err != nil {
					return err
				}
				for _, day := range info.Days {
					line := fmt.Sprintf("%s  %-9s  %s", day.Date, day.Date.Weekday(), day.Type)
					if day.Note != "" {
						line += "  (" + day.Note + ")"
					}
					fmt.Fprintln(out, line)
				}
				return nil
			}

			months, err := sy.Months()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "School year %s .. %s\n", sy.Begins().Format(), sy.Ends().Format())
			fmt.Fprintln(out, "═══════════════════════════════════════════════")
			for _, m := range months {
				fmt.Fprintf(out, "  %-9s %d  school days: %3d  holidays: %2d\n",
					m.Month, m.Year, m.SchoolDays, m.Holidays)
			}
			fmt.Fprintf(out, "Total school days: %d\n", sy.SchoolDays())
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "List every day of one month (YYYY-MM)")

	return cmd
}

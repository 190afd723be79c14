package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trackport/internal/app"
	"trackport/internal/cli"
	"trackport/internal/config"
	"trackport/internal/usecase"
)

// convertCmd converts one export file or, in print-only mode, summarizes it.
func convertCmd() *cobra.Command {
	var (
		mode        string
		output      string
		email       string
		numExamples int
		rf          rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "convert <input-file>",
		Short: "Convert a tracker export to Toggl or Clockify CSV",
		Long: `Convert a Jiffy JSON or Toggl Track CSV export into a Toggl or Clockify
import CSV. The input format is chosen by file extension (.json or .csv).
The default print-only mode summarizes the export without writing anything.`,
		Example: `  # Summarize an export without converting
  trackport convert jiffy_export.json

  # Convert to a Toggl import CSV
  trackport convert jiffy_export.json -m toggl --email you@example.com

  # Convert August only, Clockify schema, with client mapping
  trackport convert report.csv -m clockify -p projects.json -f 2025-08-01 -t 2025-08-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			loc, err := rf.location(cfg)
			if err != nil {
				return err
			}
			window, err := rf.window()
			if err != nil {
				return err
			}
			projects, err := rf.projectMap(cfg, cmd.Flags().Changed("projects"), log)
			if err != nil {
				return err
			}

			a := app.New(log, cfg)
			input := args[0]
			source, format, err := a.Source(input, loc)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if mode == app.ModePrintOnly {
				uc := &usecase.InspectUseCase{
					Log:      log,
					Source:   source,
					Loc:      loc,
					Window:   window,
					Projects: projects,
					Examples: numExamples,
				}
				report, err := uc.Run(ctx)
				if err != nil {
					return err
				}
				renderReport(os.Stdout, report, loc, rf)
				return nil
			}

			sink, outPath, err := a.CSVSink(mode, output, loc)
			if err != nil {
				cli.Usage(err.Error(), "modes: toggl, clockify, print-only")
				os.Exit(1)
			}

			if email == "" {
				email = cfg.Email
			}
			if email == "" && format == "jiffy" {
				cli.Usage(fmt.Sprintf("--email is required for %s mode", mode),
					fmt.Sprintf("trackport convert %s -m %s --email you@example.com", input, mode))
				os.Exit(1)
			}

			uc := &usecase.ConvertUseCase{
				Log:      log,
				Source:   source,
				Sink:     sink,
				Loc:      loc,
				Window:   window,
				Email:    email,
				Projects: projects,
			}
			sum, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.Success(fmt.Sprintf("converted %s to %s",
				cli.Count(sum.Written, "entry", "entries"), outPath)))
			if window.Bounded() {
				fmt.Println(cli.Dim(rangeDescription(rf)))
			}
			if sum.OpenDropped > 0 {
				fmt.Println(cli.Warning(fmt.Sprintf("%s still running, not written",
					cli.Count(sum.OpenDropped, "entry", "entries"))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", app.ModePrintOnly, "Operation mode: toggl, clockify, or print-only")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default toggl_output.csv / clockify_output.csv)")
	cmd.Flags().StringVar(&email, "email", "", "Email column value (required for toggl/clockify over a Jiffy export)")
	cmd.Flags().IntVarP(&numExamples, "num-examples", "n", 5, "Number of example entries in print-only mode")
	rf.register(cmd.Flags())
	return cmd
}

// rangeDescription renders the active date window for summaries.
func rangeDescription(rf rangeFlags) string {
	from, to := rf.fromDate, rf.toDate
	if from == "" {
		from = "beginning"
	}
	if to == "" {
		to = "now"
	}
	return fmt.Sprintf("date range: %s to %s", from, to)
}

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

// archiveCmd mirrors a filtered export into the MySQL archive table.
func archiveCmd() *cobra.Command {
	var (
		dsn string
		rf  rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "archive <input-file>",
		Short: "Archive a tracker export into MySQL",
		Long: `Run the same Load -> Normalize -> Filter pipeline as convert and upsert
the surviving entries into the time_entries table. Open entries are stored
with a NULL stop. Re-running the archive on the same export is idempotent.`,
		Example: `  # Archive a Jiffy export
  trackport archive jiffy_export.json --dsn "user:pass@tcp(localhost:3306)/tracking?parseTime=true&multiStatements=true"

  # DSN from the environment, August only
  MYSQL_DSN=... trackport archive report.csv -f 2025-08-01 -t 2025-08-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			if dsn == "" {
				dsn = cfg.MySQLDSN
			}
			if dsn == "" {
				cli.Usage("--dsn is required for archive (or set MYSQL_DSN)",
					"MYSQL_DSN=user:pass@tcp(localhost:3306)/tracking?parseTime=true trackport archive "+args[0])
				os.Exit(1)
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
			source, format, err := a.Source(args[0], loc)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			sink, err := a.ArchiveSink(ctx, dsn, format)
			if err != nil {
				return err
			}
			defer sink.Close()

			uc := &usecase.ArchiveUseCase{
				Log:      log,
				Source:   source,
				Sink:     sink,
				Loc:      loc,
				Window:   window,
				Projects: projects,
			}
			n, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.Success(fmt.Sprintf("archived %s", cli.Count(n, "entry", "entries"))))
			if window.Bounded() {
				fmt.Println(cli.Dim(rangeDescription(rf)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "MySQL DSN (default from MYSQL_DSN or config)")
	rf.register(cmd.Flags())
	return cmd
}

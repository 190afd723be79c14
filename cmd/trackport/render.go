package main

import (
	"fmt"
	"io"
	"time"

	"trackport/internal/cli"
	"trackport/internal/usecase"
)

// renderReport prints the print-only summary.
func renderReport(w io.Writer, r usecase.Report, loc *time.Location, rf rangeFlags) {
	fmt.Fprintln(w, cli.Title("Export Summary"))
	fmt.Fprint(w, cli.Table([][]string{
		{"Total entries:", fmt.Sprintf("%d", r.TotalEntries)},
		{"Active:", fmt.Sprintf("%d", r.ActiveEntries)},
		{"Deleted:", fmt.Sprintf("%d", r.DeletedEntries)},
		{"After filtering:", fmt.Sprintf("%d", r.Filtered)},
		{"Still running:", fmt.Sprintf("%d", r.OpenEntries)},
	}))
	if rf.fromDate != "" || rf.toDate != "" {
		fmt.Fprintln(w, cli.Dim(rangeDescription(rf)))
	}

	if len(r.Mappings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.Title("Project Mappings"))
		rows := make([][]string, 0, len(r.Mappings))
		for _, m := range r.Mappings {
			client := m.Client
			if client == "" {
				client = cli.Dim("(no client)")
			}
			rows = append(rows, []string{m.Project, client})
		}
		fmt.Fprint(w, cli.Table(rows))
	}

	if len(r.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.Title(fmt.Sprintf("Last %s", cli.Count(len(r.Examples), "Entry", "Entries"))))
		for i, e := range r.Examples {
			fmt.Fprintf(w, "\n%s\n", cli.Bold(fmt.Sprintf("Entry %d", i+1)))
			start := e.Start.In(loc)
			rows := [][]string{
				{"Project:", orDash(e.Project)},
				{"Note:", orDash(e.Description)},
				{"Start:", start.Format("2006-01-02 15:04:05")},
			}
			if e.Open() {
				rows = append(rows, []string{"Stop:", cli.Warning("still running")})
			} else {
				rows = append(rows,
					[]string{"Stop:", e.Stop.In(loc).Format("2006-01-02 15:04:05")},
					[]string{"Duration:", e.Duration().String()},
				)
			}
			fmt.Fprint(w, cli.Table(rows))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Title("Statistics"))
	stats := [][]string{
		{"Unique projects:", fmt.Sprintf("%d", r.UniqueProjects)},
		{"Billable entries:", fmt.Sprintf("%d", r.Billable)},
		{"Entries with notes:", fmt.Sprintf("%d", r.WithNotes)},
		{"Total time tracked:", fmt.Sprintf("%.2f hours", r.TotalTracked.Hours())},
	}
	if !r.FirstDate.IsZero() {
		stats = append(stats, []string{"Date range:", fmt.Sprintf("%s to %s",
			r.FirstDate.In(loc).Format("2006-01-02"),
			r.LastDate.In(loc).Format("2006-01-02"))})
	}
	fmt.Fprint(w, cli.Table(stats))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

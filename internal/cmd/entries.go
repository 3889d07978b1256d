package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/services"
)

// EntriesCmd manages time entries
type EntriesCmd struct {
	Del  EntriesDelCmd  `cmd:"del" help:"Delete a time entry"`
	Edit EntriesEditCmd `cmd:"edit" help:"Edit description, billable flag or duration of an entry"`
	List EntriesListCmd `cmd:"list" help:"List time entries" default:"withargs"`
	Sync EntriesSyncCmd `cmd:"sync" help:"Push entries edited while offline"`
}

// EntriesListCmd lists time entries
type EntriesListCmd struct {
	All     bool   `help:"Everyone's entries (admins and managers)" short:"a"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	From    string `help:"Only entries starting on or after this date (YYYY-MM-DD)"`
	Project string `help:"Only entries of this project ID"`
	Status  string `help:"Only entries with this status (in-progress, completed, pending)"`
	To      string `help:"Only entries starting on or before this date (YYYY-MM-DD)"`
}

// Run executes the list command
func (e *EntriesListCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	query, err := e.query()
	if err != nil {
		return err
	}

	result, err := cli.Container.EntryCache.List(context.Background(), query)
	if err != nil {
		return explain(err)
	}

	switch {
	case result.Sample:
		fmt.Fprintln(os.Stderr, "Backend unreachable and nothing cached, showing sample entries")
	case result.Stale:
		fmt.Fprintln(os.Stderr, "Backend unreachable, showing last synced entries")
	}

	if e.Format == "json" {
		return printJSON(result.Entries)
	}
	printEntries(result.Entries, e.All)
	return nil
}

func (e *EntriesListCmd) query() (services.EntryQuery, error) {
	q := services.EntryQuery{All: e.All, ProjectID: e.Project}

	from, err := parseDate("from", e.From)
	if err != nil {
		return q, err
	}
	to, err := parseDate("to", e.To)
	if err != nil {
		return q, err
	}
	if !to.IsZero() {
		// inclusive of the whole day
		to = to.AddDate(0, 0, 1).Add(-1)
	}
	q.From, q.To = from, to

	if e.Status != "" {
		status, err := domain.ParseEntryStatus(e.Status)
		if err != nil {
			return q, err
		}
		q.Status = status
	}
	return q, nil
}

func printEntries(entries []domain.TimeEntry, withOwner bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "ID\tDATE\tPROJECT\tTASK\tDESCRIPTION\tDURATION\tBILLABLE\tSTATUS"
	if withOwner {
		header = "ID\tUSER\tDATE\tPROJECT\tTASK\tDESCRIPTION\tDURATION\tBILLABLE\tSTATUS"
	}
	fmt.Fprintln(w, header)

	for _, e := range entries {
		status := e.Status.Label()
		if e.Unsynced {
			status += " (unsynced)"
		}
		date := "-"
		if !e.StartTime.IsZero() {
			date = e.StartTime.Local().Format("2006-01-02 15:04")
		}
		cols := []any{e.ID}
		if withOwner {
			cols = append(cols, orDash(e.OwnerName))
		}
		cols = append(cols,
			date,
			orDash(firstOf(e.ProjectName, e.ProjectID)),
			orDash(firstOf(e.TaskName, e.TaskID)),
			orDash(e.Description),
			domain.FormatMinutes(e.Duration),
			yesNo(e.Billable),
			status,
		)
		for i, c := range cols {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, c)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	summary := domain.Summarize(entries)
	fmt.Printf("\nTotal: %d entries, %s hours (%s billable)\n",
		summary.Count, domain.FormatMinutes(summary.TotalMinutes), domain.FormatMinutes(summary.BillableMinutes))
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// EntriesEditCmd edits an entry
type EntriesEditCmd struct {
	Billable    string  `help:"Billable flag: yes or no"`
	Description *string `help:"New description"`
	Duration    *int    `help:"New duration in minutes"`
	ID          string  `arg:"" help:"Entry ID"`
}

// Run executes the edit command
func (e *EntriesEditCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	patch := domain.EntryPatch{Description: e.Description, Duration: e.Duration}
	switch e.Billable {
	case "":
	case "yes", "true":
		b := true
		patch.Billable = &b
	case "no", "false":
		b := false
		patch.Billable = &b
	default:
		return fmt.Errorf("invalid --billable %q, expected yes or no", e.Billable)
	}

	logging.Logger.Debug("Executing entries edit command", "entry_id", e.ID)
	entry, err := cli.Container.EntryCache.Update(context.Background(), e.ID, patch)
	if err != nil {
		return explain(err)
	}

	if entry.Unsynced {
		fmt.Printf("Backend unreachable, entry %s changed locally; run 'punch entries sync' later\n", entry.ID)
		return nil
	}
	fmt.Printf("Entry %s updated\n", entry.ID)
	return nil
}

// EntriesDelCmd deletes an entry
type EntriesDelCmd struct {
	ID string `arg:"" help:"Entry ID"`
}

// Run executes the del command
func (e *EntriesDelCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	localOnly, err := cli.Container.EntryCache.Remove(context.Background(), e.ID)
	if err != nil {
		return explain(err)
	}

	if localOnly {
		fmt.Printf("Backend unreachable, entry %s removed locally only\n", e.ID)
		return nil
	}
	fmt.Printf("Entry %s deleted\n", e.ID)
	return nil
}

// EntriesSyncCmd pushes offline edits
type EntriesSyncCmd struct{}

// Run executes the sync command
func (e *EntriesSyncCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	result, err := cli.Container.EntryCache.PushUnsynced(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			return fmt.Errorf("backend unreachable, %d entries pushed before failing: %w", result.Pushed, err)
		}
		return explain(err)
	}

	fmt.Printf("Pushed %d entries", result.Pushed)
	if result.Failed > 0 {
		fmt.Printf(", %d rejected by the backend", result.Failed)
	}
	fmt.Println()
	return nil
}

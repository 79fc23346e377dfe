package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxwatch/fxwatch/journal"
)

func newJournalCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect journaled runs",
	}

	cmd.AddCommand(
		newJournalListCmd(rc),
		newJournalShowCmd(rc),
	)

	return cmd
}

func (rc *RootConfig) openJournal() (*journal.SQLite, error) {
	if rc.cfg.Journal.DBPath == "" {
		return nil, errors.New("missing journal database: set --db or config journal.db_path")
	}
	return journal.NewSQLite(rc.cfg.Journal.DBPath)
}

func newJournalListCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journaled inspection runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rc.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			runs, err := j.ListRuns()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No journaled runs.")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %s  %s  %d trades\n",
					r.RunID, r.Time.UTC().Format("2006-01-02 15:04:05"), r.AccountID, r.TradeCount)
			}
			return nil
		},
	}
}

func newJournalShowCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Render a journaled inspection run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rc.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			rep, err := j.GetRun(args[0])
			if err != nil {
				return err
			}
			return rep.Render(cmd.OutOrStdout())
		},
	}
}

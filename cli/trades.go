package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxwatch/fxwatch/inspect"
	"github.com/fxwatch/fxwatch/journal"
)

func newTradesCmd(rc *RootConfig) *cobra.Command {
	var withPrices bool

	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Inspect open trades and their attached take-profit/stop-loss orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := rc.account()
			if err != nil {
				return err
			}
			client, err := rc.client()
			if err != nil {
				return err
			}

			ins := &inspect.Inspector{
				Source: client,
				Out:    cmd.OutOrStdout(),
				Log:    rc.log,
			}
			if withPrices {
				ins.Pricing = client
			}

			rep, err := ins.InspectAll(cmd.Context(), accountID)
			if err != nil {
				return err
			}

			if rc.cfg.Journal.DBPath == "" {
				return nil
			}
			j, err := journal.NewSQLite(rc.cfg.Journal.DBPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()
			if err := j.RecordInspection(rep); err != nil {
				return fmt.Errorf("journal inspection: %w", err)
			}
			rc.log.WithField("run", rep.RunID).Info("inspection journaled")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withPrices, "prices", false, "Also fetch current bid/ask for open instruments")

	return cmd
}

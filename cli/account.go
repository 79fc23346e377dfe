package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAccountsCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts the token is authorized for",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rc.client()
			if err != nil {
				return err
			}

			accounts, err := client.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(accounts) == 0 {
				fmt.Fprintln(out, "No accounts.")
				return nil
			}
			for _, a := range accounts {
				if len(a.Tags) > 0 {
					fmt.Fprintf(out, "%s [%s]\n", a.ID, strings.Join(a.Tags, ", "))
					continue
				}
				fmt.Fprintln(out, a.ID)
			}
			return nil
		},
	}
}

func newAccountCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Print a summary of the selected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := rc.account()
			if err != nil {
				return err
			}
			client, err := rc.client()
			if err != nil {
				return err
			}

			s, err := client.GetAccountSummary(cmd.Context(), accountID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account: %s", s.ID)
			if s.Alias != "" {
				fmt.Fprintf(out, " (%s)", s.Alias)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Currency: %s\n", s.Currency)
			fmt.Fprintf(out, "Balance: %s\n", s.Balance)
			fmt.Fprintf(out, "NAV: %s\n", s.NAV)
			fmt.Fprintf(out, "Unrealized P/L: %s\n", s.UnrealizedPL)
			fmt.Fprintf(out, "Margin Used: %s\n", s.MarginUsed)
			fmt.Fprintf(out, "Margin Available: %s\n", s.MarginAvailable)
			fmt.Fprintf(out, "Open Trades: %d\n", s.OpenTradeCount)
			fmt.Fprintf(out, "Open Positions: %d\n", s.OpenPositionCount)
			fmt.Fprintf(out, "Pending Orders: %d\n", s.PendingOrderCount)
			return nil
		},
	}
}

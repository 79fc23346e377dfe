package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxwatch/fxwatch/config"
)

func newConfigCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
	}

	var initOutput string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if rc.AccountID != "" {
				cfg.Account.ID = rc.AccountID
			}
			if err := cfg.SaveToFile(initOutput); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", initOutput)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "fxwatch.yaml", "output config file path")

	var validatePath string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(validatePath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration valid: %s\n", validatePath)
			fmt.Fprintf(cmd.OutOrStdout(), "  Account: %s\n", cfg.Account.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "  Environment: %s\n", cfg.OANDA.Env)
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&validatePath, "file", "f", "", "path to config file (required)")
	validateCmd.MarkFlagRequired("file")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fxwatch/fxwatch/config"
	"github.com/fxwatch/fxwatch/oanda"
)

// RootConfig carries flag values and the resolved runtime state shared by
// all subcommands.
type RootConfig struct {
	ConfigPath string
	Env        string
	Token      string
	AccountID  string
	DBPath     string
	BaseURL    string
	LogLevel   string

	cfg *config.Config
	log *logrus.Logger
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "fxwatch",
		Short:         "fxwatch — read-only OANDA account diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.Env, "env", "", "OANDA environment: practice|live")
	cmd.PersistentFlags().StringVar(&rc.Token, "token", "", "OANDA API token (or env OANDA_TOKEN)")
	cmd.PersistentFlags().StringVar(&rc.AccountID, "account", "", "OANDA account ID (or env OANDA_ACCOUNT_ID)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite journal database (optional)")
	cmd.PersistentFlags().StringVar(&rc.BaseURL, "base-url", "", "Override OANDA base URL (for testing)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rc.setup()
	}

	// Subcommands
	cmd.AddCommand(
		newTradesCmd(rc),
		newAccountsCmd(rc),
		newAccountCmd(rc),
		newJournalCmd(rc),
		newConfigCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "fxwatch (dev)")
		},
	})

	return cmd
}

// setup resolves configuration in flag > environment > file order and
// prepares logging.
func (rc *RootConfig) setup() error {
	// .env is optional; OANDA_TOKEN commonly lives there.
	_ = godotenv.Load()

	cfg := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if rc.Env != "" {
		cfg.OANDA.Env = rc.Env
	}
	if rc.Token != "" {
		cfg.OANDA.Token = rc.Token
	}
	if rc.AccountID != "" {
		cfg.Account.ID = rc.AccountID
	}
	if rc.DBPath != "" {
		cfg.Journal.DBPath = rc.DBPath
	}
	if rc.LogLevel != "" {
		cfg.Log.Level = rc.LogLevel
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cfg.Log.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("bad log level: %w", err)
		}
		log.SetLevel(lvl)
	}

	rc.cfg = cfg
	rc.log = log
	return nil
}

// client builds an OANDA client from the resolved configuration.
func (rc *RootConfig) client() (*oanda.Client, error) {
	c, err := oanda.New(rc.cfg.OANDA.Token, rc.cfg.OANDA.Env)
	if err != nil {
		return nil, err
	}
	if rc.BaseURL != "" {
		c.BaseURL = rc.BaseURL
	}
	c.Log = rc.log
	return c, nil
}

func (rc *RootConfig) account() (string, error) {
	if rc.cfg.Account.ID == "" {
		return "", errors.New("missing account: set --account, config account.id, or env OANDA_ACCOUNT_ID")
	}
	return rc.cfg.Account.ID, nil
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

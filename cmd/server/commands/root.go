package commands

import (
	"context"
	"fmt"
	"os"

	"sheetcrm/internal/config"
	"sheetcrm/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "sheetcrm"

// Version will be set during build
var Version = "dev"

// NewRootCmd creates the root command. Running it without a subcommand serves.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetcrm",
		Short: "CRUD API over a spreadsheet workbook",
		Long: `sheetcrm serves users, customers, products and bills stored as rows
of a spreadsheet workbook (Google Sheets, PostgreSQL or in memory).

Example:
	 STORE_BACKEND=memory INIT_EMPTY_WORKSHEETS=true sheetcrm serve
`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (default: sheetcrm.yaml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewCheckCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads and validates config and builds the process logger
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

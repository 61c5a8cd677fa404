package commands

import (
	"fmt"

	"sheetcrm/internal/config"
	"sheetcrm/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate worksheet headers against the expected columns",
		Long: `Opens the configured record store and compares the header row of every
worksheet with the columns the API reads and writes. Exits non-zero on drift.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := commandContext(cmd)
			store, closeStore, err := config.OpenStore(ctx, cfg, prometheus.NewRegistry(), log)
			if err != nil {
				return err
			}
			defer closeStore()

			ws := cfg.WorksheetNames()
			if err := repository.NewRepositories(store, ws).EnsureSchemas(ctx, cfg.Store.InitEmptySheet); err != nil {
				return fmt.Errorf("schema check failed: %w", err)
			}

			log.Info("Worksheet headers match",
				zap.String("users", ws.Users),
				zap.String("customers", ws.Customers),
				zap.String("products", ws.Products),
				zap.String("bills", ws.Bills),
			)
			cmd.Println("✅ All worksheet headers match")
			return nil
		},
	}
}

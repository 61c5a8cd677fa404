package config

import (
	"context"
	"fmt"

	"sheetcrm/internal/sheet"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// OpenStore builds the configured record store wrapped with metrics.
// The returned close func releases backend resources.
func OpenStore(ctx context.Context, cfg *Config, reg prometheus.Registerer, log *zap.Logger) (sheet.Store, func(), error) {
	var (
		store sheet.Store
		done  = func() {}
	)

	switch cfg.Store.Backend {
	case BackendSheets:
		gs, err := sheet.NewGoogleStore(ctx, cfg.Sheets.SpreadsheetID,
			option.WithCredentialsFile(cfg.Sheets.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open spreadsheet: %w", err)
		}
		log.Info("Opened Google spreadsheet", zap.String("spreadsheet_id", cfg.Sheets.SpreadsheetID))
		store = gs

	case BackendPostgres:
		pool, err := ConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, err
		}
		pg := sheet.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("AutoMigrate applied successfully")
		store = pg
		done = pool.Close

	case BackendMemory:
		ws := cfg.WorksheetNames()
		log.Warn("Using in-memory store, data is lost on exit")
		store = sheet.NewMemoryStore(ws.Users, ws.Customers, ws.Products, ws.Bills)

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return sheet.Instrument(store, reg), done, nil
}

// Package sheets loads the scheme catalog from the content team's Google
// Sheet. Like the mongodb source it runs once at startup; the spreadsheet
// is the editing surface, the process never writes back.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/config"
)

// Repository reads catalog content from a Google spreadsheet.
type Repository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	schemeRange   string
	deadlineRange string
	logger        *zap.Logger
}

// NewRepository builds a Google Sheets backed catalog source.
func NewRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &Repository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		schemeRange:   cfg.SchemeRange,
		deadlineRange: cfg.DeadlineRange,
		logger:        logger,
	}, nil
}

// LoadCatalog reads and parses the scheme and deadline ranges. Row order in
// the sheet is the catalog's presentation order.
func (r *Repository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	schemeRows, err := r.readRange(ctx, r.schemeRange)
	if err != nil {
		return nil, err
	}
	schemes, err := ParseSchemeRows(schemeRows)
	if err != nil {
		return nil, fmt.Errorf("parse scheme rows: %w", err)
	}

	deadlineRows, err := r.readRange(ctx, r.deadlineRange)
	if err != nil {
		return nil, err
	}
	deadlines, err := ParseDeadlineRows(deadlineRows)
	if err != nil {
		return nil, fmt.Errorf("parse deadline rows: %w", err)
	}

	r.logger.Info("catalog loaded from spreadsheet",
		zap.Int("schemes", len(schemes)),
		zap.Int("deadlines", len(deadlines)))

	return &catalog.Catalog{Schemes: schemes, Deadlines: deadlines}, nil
}

func (r *Repository) readRange(ctx context.Context, sheetRange string) ([][]interface{}, error) {
	if sheetRange == "" {
		return nil, fmt.Errorf("sheetRange must not be empty")
	}

	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", sheetRange, err)
	}

	return resp.Values, nil
}

package ledger

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"salonbot/utils"

	"go.uber.org/zap"
)

const gatewayTimeout = 10 * time.Second

// SheetsGateway appends booking rows to a Google Sheet.
type SheetsGateway struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetRange    string
}

// NewSheetsGateway builds the sheets client from a service-account JSON
// credential. sheetRange is the A1-notation anchor rows are appended under,
// e.g. "list!A1".
func NewSheetsGateway(ctx context.Context, credentialsJSON, spreadsheetID, sheetRange string) (*SheetsGateway, error) {
	if credentialsJSON == "" {
		return nil, fmt.Errorf("ledger: missing service-account credentials")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("ledger: missing spreadsheet id")
	}
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to build service: %w", err)
	}
	return &SheetsGateway{svc: svc, spreadsheetID: spreadsheetID, sheetRange: sheetRange}, nil
}

func (g *SheetsGateway) AppendRow(ctx context.Context, row []string) error {
	if len(row) == 0 {
		return fmt.Errorf("ledger: empty row")
	}
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	values := make([]any, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	vr := &gsheets.ValueRange{Values: [][]any{values}}

	_, err := g.svc.Spreadsheets.Values.
		Append(g.spreadsheetID, g.sheetRange, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ledger: append failed: %w", err)
	}
	utils.GetLogger().Info("Booking row appended to ledger", zap.Strings("row", row))
	return nil
}

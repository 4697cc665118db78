package sheetsSink

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/customHttpClient"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
	"github.com/skillsfirst/briefapi/internal/receipt"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

var _ receipt.Sink = (*Sink)(nil)

// Sink appends receipt rows to a Google Sheet. Credential loading is the
// caller's concern; this only needs a token source and a spreadsheet id.
type Sink struct {
	service       *sheets.Service
	spreadsheetID string
	logger        *logger_i.Logger
}

func NewSink(ctx context.Context, ts oauth2.TokenSource, spreadsheetID string) (*Sink, error) {
	clientCtx := context.WithValue(ctx, oauth2.HTTPClient, customHttpClient.GetPooledClient())
	svc, err := sheets.NewService(clientCtx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &Sink{
		service:       svc,
		spreadsheetID: spreadsheetID,
		logger:        logger_i.NewLogger("SheetsSink"),
	}, nil
}

func (s *Sink) Append(ctx context.Context, row briefModel.ReceiptRow) error {
	values := receipt.Values(row)
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, config.SheetsAppendRange, &sheets.ValueRange{
			Values: [][]interface{}{cells},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheet append: %w", err)
	}
	s.logger.Debug("Appended receipt row", "document", row.DocumentName)
	return nil
}

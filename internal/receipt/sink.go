package receipt

import (
	"context"

	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

// Sink is the external spreadsheet-like log. Appends are best-effort: a
// failed append is caught by the caller, surfaced as a non-fatal warning
// and never blocks locally-rendered artifacts.
type Sink interface {
	Append(ctx context.Context, row briefModel.ReceiptRow) error
}

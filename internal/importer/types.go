package importer

import (
	"context"
	"log/slog"

	"github.com/gamestash/ebayimport/internal/errlog"
	"github.com/gamestash/ebayimport/internal/store"
	"github.com/jackc/pgx/v5/pgtype"
)

// Marketplace is stamped on every sale this importer writes.
const Marketplace = "Ebay"

// Store is the relational store as the importers see it: the plain queries
// plus the ability to run several of them as one transaction.
// *store.Store implements it.
type Store interface {
	store.Querier
	InTx(ctx context.Context, fn func(q store.Querier) error) error
}

// Result counts what one pass did. Failed rows are also in the error log.
type Result struct {
	TotalRows int // non-empty data rows seen
	Inserted  int // rows that produced a new record
	Items     int // line-items written (sale pass only)
	Updated   int // shipping-cost patches applied (sale pass only)
	Skipped   int // rows with no effect (unknown row type, label with no sale)
	Failed    int // rows abandoned after an error-log entry
}

// Importer runs the two report passes against a Store.
type Importer struct {
	store Store
	errs  *errlog.Log
	log   *slog.Logger
}

// New returns an Importer. logger may be nil, in which case the default
// slog logger is used.
func New(st Store, errs *errlog.Log, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: st, errs: errs, log: logger}
}

// parseDate normalizes a report date, logging unparseable values and
// returning a null date so the row keeps going.
func (imp *Importer) parseDate(s string) pgtype.Date {
	d, ok := ParseReportDate(s)
	if !ok {
		imp.errs.Logf("cannot parse the date %q", s)
	}
	return d
}

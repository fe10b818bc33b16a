// Package store is the query layer over the pre-existing inventory-finances
// schema. The schema (ShipmentsOut, Sales, SaleItems) is owned elsewhere;
// this package only reads and writes it, never creates or alters it.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// InsertShipmentParams holds one ShipmentsOut row.
// ShippedDate and TrackingNumber may be null (Valid=false).
type InsertShipmentParams struct {
	ShippedDate    pgtype.Date
	TrackingNumber pgtype.Text
	Carrier        string
}

// InsertSaleParams holds one Sales row. Monetary fields are integer cents.
// ShipmentOutID is null when the order had no matching shipment row.
// ShippingCost starts null and is patched later by a shipping-label row.
type InsertSaleParams struct {
	Date             pgtype.Date
	Marketplace      string
	PlatformSaleID   string
	ShipmentOutID    pgtype.Int8
	OrderSubtotal    int64
	ShippingPaidToMe int64
	PlatformFee      int64
}

// InsertSaleItemParams holds one SaleItems row. Exactly one of the four
// item-id columns is expected to be non-null; the caller decides which.
type InsertSaleItemParams struct {
	SaleID          int64
	Date            pgtype.Date
	GameItemID      pgtype.Text
	ConsoleItemID   pgtype.Text
	AccessoryItemID pgtype.Text
	MiscItemID      pgtype.Text
	SoldPrice       int64
}

// Querier is the set of queries the importers run. *Queries implements it
// directly; Store.InTx hands the importer a transaction-scoped one.
type Querier interface {
	InsertShipment(ctx context.Context, arg InsertShipmentParams) (int64, error)
	InsertSale(ctx context.Context, arg InsertSaleParams) (int64, error)
	InsertSaleItem(ctx context.Context, arg InsertSaleItemParams) error
	FindSaleID(ctx context.Context, marketplace, platformSaleID string) (int64, bool, error)
	SetShippingCost(ctx context.Context, saleID int64, cents int64) error
}

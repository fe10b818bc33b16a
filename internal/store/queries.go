package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Queries runs SQL against a DBTX. New it with a pool for standalone
// statements or with a pgx.Tx for transactional work.
type Queries struct {
	db DBTX
}

// New returns a Queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const insertShipment = `
INSERT INTO "ShipmentsOut" ("ShippedDate", "TrackingNumber", "Carrier")
VALUES ($1, $2, $3)
RETURNING "ID"
`

// InsertShipment inserts one outbound shipment and returns its assigned id.
func (q *Queries) InsertShipment(ctx context.Context, arg InsertShipmentParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, insertShipment,
		arg.ShippedDate,
		arg.TrackingNumber,
		arg.Carrier,
	).Scan(&id)
	return id, err
}

const insertSale = `
INSERT INTO "Sales" ("Date", "Marketplace", "PlatformSaleID", "ShipmentOutID", "OrderSubtotal", "ShippingPaidToMe", "PlatformFee")
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING "ID"
`

// InsertSale inserts one sale and returns its assigned id.
// ShippingCost is left null; SetShippingCost patches it later.
func (q *Queries) InsertSale(ctx context.Context, arg InsertSaleParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, insertSale,
		arg.Date,
		arg.Marketplace,
		arg.PlatformSaleID,
		arg.ShipmentOutID,
		arg.OrderSubtotal,
		arg.ShippingPaidToMe,
		arg.PlatformFee,
	).Scan(&id)
	return id, err
}

const insertSaleItem = `
INSERT INTO "SaleItems" ("SaleID", "Date", "GameItemID", "ConsoleItemID", "AccessoryItemID", "MiscItemID", "SoldPrice")
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// InsertSaleItem inserts one sale line-item.
func (q *Queries) InsertSaleItem(ctx context.Context, arg InsertSaleItemParams) error {
	_, err := q.db.Exec(ctx, insertSaleItem,
		arg.SaleID,
		arg.Date,
		arg.GameItemID,
		arg.ConsoleItemID,
		arg.AccessoryItemID,
		arg.MiscItemID,
		arg.SoldPrice,
	)
	return err
}

const findSaleID = `
SELECT "ID"
FROM "Sales"
WHERE "Marketplace" = $1 AND "PlatformSaleID" = $2
ORDER BY "ID"
LIMIT 1
`

// FindSaleID returns the first sale (lowest id) matching the marketplace and
// platform sale id. The pair is expected unique but not enforced; when
// duplicates exist the earliest insert wins. found is false on no match.
func (q *Queries) FindSaleID(ctx context.Context, marketplace, platformSaleID string) (int64, bool, error) {
	var id int64
	err := q.db.QueryRow(ctx, findSaleID, marketplace, platformSaleID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

const setShippingCost = `
UPDATE "Sales"
SET "ShippingCost" = $2
WHERE "ID" = $1
`

// SetShippingCost patches the shipping-cost column of one sale,
// leaving every other column untouched.
func (q *Queries) SetShippingCost(ctx context.Context, saleID int64, cents int64) error {
	_, err := q.db.Exec(ctx, setShippingCost, saleID, cents)
	return err
}

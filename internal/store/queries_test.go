package store

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// fakeDB records the last statement and arguments, and plays back a
// single scanned id or error.
type fakeDB struct {
	sql    string
	args   []any
	scanID int64
	err    error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.CommandTag{}, f.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, f.err
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	f.sql, f.args = sql, args
	return fakeRow{id: f.scanID, err: f.err}
}

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) == 1 {
		if p, ok := dest[0].(*int64); ok {
			*p = r.id
		}
	}
	return nil
}

func TestInsertShipment(t *testing.T) {
	db := &fakeDB{scanID: 7}
	q := New(db)

	id, err := q.InsertShipment(context.Background(), InsertShipmentParams{
		TrackingNumber: pgtype.Text{String: "9400111", Valid: true},
		Carrier:        "USPS",
	})
	if err != nil {
		t.Fatalf("InsertShipment() error = %v", err)
	}
	if id != 7 {
		t.Errorf("InsertShipment() id = %d, want 7", id)
	}
	if !strings.Contains(db.sql, `INSERT INTO "ShipmentsOut"`) || !strings.Contains(db.sql, `RETURNING "ID"`) {
		t.Errorf("InsertShipment SQL = %q", db.sql)
	}
	if len(db.args) != 3 {
		t.Fatalf("InsertShipment args = %d, want 3", len(db.args))
	}
	if db.args[2] != "USPS" {
		t.Errorf("carrier arg = %v, want USPS", db.args[2])
	}
}

func TestInsertSale_ArgumentOrder(t *testing.T) {
	db := &fakeDB{scanID: 11}
	q := New(db)

	_, err := q.InsertSale(context.Background(), InsertSaleParams{
		Marketplace:      "Ebay",
		PlatformSaleID:   "111-222",
		OrderSubtotal:    1999,
		ShippingPaidToMe: 425,
		PlatformFee:      285,
	})
	if err != nil {
		t.Fatalf("InsertSale() error = %v", err)
	}
	if len(db.args) != 7 {
		t.Fatalf("InsertSale args = %d, want 7", len(db.args))
	}
	if db.args[1] != "Ebay" || db.args[2] != "111-222" {
		t.Errorf("marketplace/sale id args = %v, %v", db.args[1], db.args[2])
	}
	if db.args[4] != int64(1999) || db.args[5] != int64(425) || db.args[6] != int64(285) {
		t.Errorf("money args = %v", db.args[4:])
	}
}

func TestInsertSaleItem_SevenColumns(t *testing.T) {
	db := &fakeDB{}
	q := New(db)

	err := q.InsertSaleItem(context.Background(), InsertSaleItemParams{
		SaleID:     11,
		GameItemID: pgtype.Text{String: "1234", Valid: true},
		SoldPrice:  1999,
	})
	if err != nil {
		t.Fatalf("InsertSaleItem() error = %v", err)
	}
	if !strings.Contains(db.sql, `INSERT INTO "SaleItems"`) {
		t.Errorf("InsertSaleItem SQL = %q", db.sql)
	}
	if len(db.args) != 7 {
		t.Fatalf("InsertSaleItem args = %d, want 7", len(db.args))
	}
}

func TestFindSaleID_NoRows(t *testing.T) {
	db := &fakeDB{err: pgx.ErrNoRows}
	q := New(db)

	id, found, err := q.FindSaleID(context.Background(), "Ebay", "111-222")
	if err != nil {
		t.Fatalf("FindSaleID() error = %v, want nil for no rows", err)
	}
	if found || id != 0 {
		t.Errorf("FindSaleID() = (%d, %v), want (0, false)", id, found)
	}
}

func TestFindSaleID_FirstByLowestID(t *testing.T) {
	db := &fakeDB{scanID: 3}
	q := New(db)

	id, found, err := q.FindSaleID(context.Background(), "Ebay", "111-222")
	if err != nil {
		t.Fatalf("FindSaleID() error = %v", err)
	}
	if !found || id != 3 {
		t.Errorf("FindSaleID() = (%d, %v), want (3, true)", id, found)
	}
	if !strings.Contains(db.sql, `ORDER BY "ID"`) || !strings.Contains(db.sql, "LIMIT 1") {
		t.Errorf("FindSaleID SQL %q must pin the first (lowest id) match", db.sql)
	}
}

func TestSetShippingCost(t *testing.T) {
	db := &fakeDB{}
	q := New(db)

	if err := q.SetShippingCost(context.Background(), 11, -550); err != nil {
		t.Fatalf("SetShippingCost() error = %v", err)
	}
	if !strings.Contains(db.sql, `UPDATE "Sales"`) || !strings.Contains(db.sql, `"ShippingCost"`) {
		t.Errorf("SetShippingCost SQL = %q", db.sql)
	}
	if len(db.args) != 2 || db.args[0] != int64(11) || db.args[1] != int64(-550) {
		t.Errorf("SetShippingCost args = %v, want [11 -550]", db.args)
	}
}

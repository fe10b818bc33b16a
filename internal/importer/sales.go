package importer

import (
	"context"
	"io"
	"strings"

	"github.com/gamestash/ebayimport/internal/store"
	"github.com/jackc/pgx/v5/pgtype"
)

// transactionColumns are the columns the sale pass needs from the eBay
// transaction report.
var transactionColumns = []string{
	"Type",
	"Transaction creation date",
	"Order number",
	"Item subtotal",
	"Shipping and handling",
	"Final Value Fee - fixed",
	"Final Value Fee - variable",
	"Custom label",
	"Net amount",
}

// ImportSales runs the sale pass over the transaction report.
// shipmentsByOrder is the completed map from the shipment pass; it is read
// only. Each "Order" row commits its Sales row and line-item as one unit;
// each "shipping label" row commits its patch independently.
func (imp *Importer) ImportSales(ctx context.Context, r io.Reader, shipmentsByOrder map[string]int64) (Result, error) {
	idx, rows, err := readReport(r, transactionColumns)
	if err != nil {
		return Result{}, err
	}

	var res Result

	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		res.TotalRows++

		rowType := getCell(row, idx, "Type")
		switch {
		case rowType == "Order":
			imp.importOrderRow(ctx, row, idx, shipmentsByOrder, &res)
		case isShippingLabel(rowType):
			imp.importShippingLabelRow(ctx, row, idx, &res)
		default:
			res.Skipped++
		}
	}

	imp.log.Info("sales imported",
		"rows", res.TotalRows,
		"inserted", res.Inserted,
		"items", res.Items,
		"shipping_costs_updated", res.Updated,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)

	return res, nil
}

// isShippingLabel reports whether a row type is a shipping-label charge.
// The report writes variants like "Shipping label"; match loosely.
func isShippingLabel(rowType string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(rowType)), "shipping label")
}

// importOrderRow creates a sale and, when the custom label classifies, its
// single line-item, committed together.
func (imp *Importer) importOrderRow(ctx context.Context, row []string, idx headerIndex, shipmentsByOrder map[string]int64, res *Result) {
	orderNumber := getCell(row, idx, "Order number")
	date := imp.parseDate(getCell(row, idx, "Transaction creation date"))

	subtotal, ok := imp.cents(row, idx, "Item subtotal", orderNumber)
	if !ok {
		res.Failed++
		return
	}
	shippingPaid, ok := imp.cents(row, idx, "Shipping and handling", orderNumber)
	if !ok {
		res.Failed++
		return
	}
	feeFixed, ok := imp.cents(row, idx, "Final Value Fee - fixed", orderNumber)
	if !ok {
		res.Failed++
		return
	}
	feeVariable, ok := imp.cents(row, idx, "Final Value Fee - variable", orderNumber)
	if !ok {
		res.Failed++
		return
	}

	var shipmentOutID pgtype.Int8
	if id, ok := shipmentsByOrder[orderNumber]; ok {
		shipmentOutID = pgtype.Int8{Int64: id, Valid: true}
	}

	label := getCell(row, idx, "Custom label")

	err := imp.store.InTx(ctx, func(q store.Querier) error {
		saleID, err := q.InsertSale(ctx, store.InsertSaleParams{
			Date:             date,
			Marketplace:      Marketplace,
			PlatformSaleID:   orderNumber,
			ShipmentOutID:    shipmentOutID,
			OrderSubtotal:    subtotal,
			ShippingPaidToMe: shippingPaid,
			PlatformFee:      feeFixed + feeVariable,
		})
		if err != nil {
			return err
		}
		imp.createSaleItem(ctx, q, saleID, date, label, subtotal, res)
		return nil
	})
	if err != nil {
		imp.errs.Logf("insert sale failed: %v - Order Number: %s", err, orderNumber)
		res.Failed++
		return
	}

	res.Inserted++
}

// importShippingLabelRow patches the shipping cost of the sale created for
// the same order number. A label with no matching sale is skipped quietly:
// labels bought for orders outside this report window are expected.
func (imp *Importer) importShippingLabelRow(ctx context.Context, row []string, idx headerIndex, res *Result) {
	orderNumber := getCell(row, idx, "Order number")

	// Net amount keeps the sign the report gives it, normally negative.
	cost, ok := imp.cents(row, idx, "Net amount", orderNumber)
	if !ok {
		res.Failed++
		return
	}

	saleID, found, err := imp.store.FindSaleID(ctx, Marketplace, orderNumber)
	if err != nil {
		imp.errs.Logf("find sale failed: %v - Order Number: %s", err, orderNumber)
		res.Failed++
		return
	}
	if !found {
		res.Skipped++
		return
	}

	if err := imp.store.SetShippingCost(ctx, saleID, cost); err != nil {
		imp.errs.Logf("update shipping cost failed: %v - Order Number: %s", err, orderNumber)
		res.Failed++
		return
	}

	res.Updated++
}

// createSaleItem writes the single line-item for a sale. An unrecognized
// label prefix means the sale has no inventory link; that is normal, not a
// failure. A store rejection is logged and swallowed so the sale itself
// still commits.
func (imp *Importer) createSaleItem(ctx context.Context, q store.Querier, saleID int64, date pgtype.Date, label string, subtotal int64, res *Result) {
	category, itemID := ClassifyLabel(label)
	if category == ItemUnrecognized {
		return
	}

	params := store.InsertSaleItemParams{
		SaleID:    saleID,
		Date:      date,
		SoldPrice: subtotal,
	}
	id := pgtype.Text{String: itemID, Valid: true}
	switch category {
	case ItemGame:
		params.GameItemID = id
	case ItemConsole:
		params.ConsoleItemID = id
	case ItemAccessory:
		params.AccessoryItemID = id
	case ItemMisc:
		params.MiscItemID = id
	}

	if err := q.InsertSaleItem(ctx, params); err != nil {
		imp.errs.Logf("insert sale item failed: %v - Sale ID: %d - Label: %s", err, saleID, label)
		return
	}
	res.Items++
}

// cents converts one currency cell, logging and signalling failure so the
// caller can abandon the row.
func (imp *Importer) cents(row []string, idx headerIndex, column, orderNumber string) (int64, bool) {
	v, err := ToCents(getCell(row, idx, column))
	if err != nil {
		imp.errs.Logf("cannot parse %s: %v - Order Number: %s", column, err, orderNumber)
		return 0, false
	}
	return v, true
}

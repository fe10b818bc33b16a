package importer

import (
	"context"
	"io"

	"github.com/gamestash/ebayimport/internal/store"
)

// shipmentColumns are the columns the shipment pass needs from the eBay
// orders report.
var shipmentColumns = []string{
	"Shipped On Date",
	"Tracking Number",
	"Shipping Service",
	"Order Number",
}

// ImportShipments inserts one ShipmentsOut row per report row and returns
// the order-number → shipment-id map the sale pass joins against. The map
// lives only for this run; it is not persisted.
//
// A store rejection is logged with the row's identifying context and the
// row is skipped; the pass itself only fails if the report cannot be read.
func (imp *Importer) ImportShipments(ctx context.Context, r io.Reader) (map[string]int64, Result, error) {
	idx, rows, err := readReport(r, shipmentColumns)
	if err != nil {
		return nil, Result{}, err
	}

	byOrder := make(map[string]int64)
	var res Result

	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		res.TotalRows++

		orderNumber := getCell(row, idx, "Order Number")
		tracking := toNullText(getCell(row, idx, "Tracking Number"))
		carrier := ClassifyCarrier(getCell(row, idx, "Shipping Service"))
		shippedDate := imp.parseDate(getCell(row, idx, "Shipped On Date"))

		id, err := imp.store.InsertShipment(ctx, store.InsertShipmentParams{
			ShippedDate:    shippedDate,
			TrackingNumber: tracking,
			Carrier:        string(carrier),
		})
		if err != nil {
			imp.errs.Logf("insert shipment failed: %v - Order Number: %s - Tracking Number: %s - Carrier: %s",
				err, orderNumber, tracking.String, carrier)
			res.Failed++
			continue
		}

		// Last write wins when an order ships in multiple packages; only
		// the final package's shipment gets linked to the sale.
		byOrder[orderNumber] = id
		res.Inserted++
	}

	imp.log.Info("shipments imported",
		"rows", res.TotalRows,
		"inserted", res.Inserted,
		"failed", res.Failed,
	)

	return byOrder, res, nil
}

// Package importer turns the two eBay export reports into rows of the
// inventory-finances schema.
//
// A run is two sequential passes sharing one in-memory correlation:
//
//  1. The shipment pass reads the orders report, inserts one ShipmentsOut
//     row per line, and returns a map from marketplace order number to the
//     store-assigned shipment id.
//  2. The sale pass reads the transaction report. "Order" rows become a
//     Sales row plus (when the custom label classifies) one SaleItems row,
//     committed together; "shipping label" rows patch the shipping cost of
//     the sale created earlier in the same scan.
//
// The pass order is load-bearing: sales join against the completed
// shipment map.
//
// Per-row failures are appended to the error log and the row is skipped;
// nothing short of a startup failure aborts a run. Re-running against the
// same reports duplicates shipments and sales - there is no dedup key.
package importer

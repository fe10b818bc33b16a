package importer

import "strings"

// Carrier is the closed set of shipping carriers the finances database knows.
type Carrier string

const (
	CarrierUSPS   Carrier = "USPS"
	CarrierFedEx  Carrier = "FedEx"
	CarrierUPS    Carrier = "UPS"
	CarrierDHL    Carrier = "DHL"
	CarrierAmazon Carrier = "Amazon"
	CarrierNotSet Carrier = "Not Set"
)

// carrierKeywords is checked in order; the first keyword found in the
// service description wins. USPS must come before UPS, which it contains.
var carrierKeywords = []struct {
	keyword string
	carrier Carrier
}{
	{"USPS", CarrierUSPS},
	{"FEDEX", CarrierFedEx},
	{"UPS", CarrierUPS},
	{"DHL", CarrierDHL},
	{"AMAZON", CarrierAmazon},
}

// ClassifyCarrier maps a free-text shipping-service description to a
// Carrier. Total over all strings; unknown services classify as Not Set.
func ClassifyCarrier(service string) Carrier {
	upper := strings.ToUpper(service)
	for _, k := range carrierKeywords {
		if strings.Contains(upper, k.keyword) {
			return k.carrier
		}
	}
	return CarrierNotSet
}

package importer

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// reportDateLayouts are the date formats the eBay exports emit, tried in
// order. The orders report dashes its dates ("Sep-30-23"); the transaction
// report spells the year out ("Jul 3, 2023").
var reportDateLayouts = []string{
	"Jan-2-06",
	"Jan 2, 2006",
}

// ParseReportDate normalizes a report date to a pgtype.Date. ok is false
// when no known layout matches; callers treat that as a null date, not an
// abort.
func ParseReportDate(s string) (pgtype.Date, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}, true
		}
	}
	return pgtype.Date{}, false
}

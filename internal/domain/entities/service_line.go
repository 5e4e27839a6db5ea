package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceLine is a priced service offered by the workshop catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A line is immutable once fetched from the catalog; work orders keep a
// snapshot of the lines that were attached to them.
type ServiceLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// SumPrices returns the sum of all line prices, starting from zero.
func SumPrices(lines []ServiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price)
	}
	return total
}

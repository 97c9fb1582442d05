package mapping

import (
	"github.com/shopspring/decimal"
)

// strPtr converts an optional string to its nullable column form.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// strVal converts a nullable column back to the domain's empty-string form.
func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	return &d
}

func decimalVal(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

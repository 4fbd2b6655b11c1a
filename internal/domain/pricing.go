package domain

import "math"

// PriceQuote is the display breakdown of a service price with Quebec sales
// taxes. Every field is rounded to 2 decimals independently; the persisted
// reservation keeps the untaxed base price, so no rounding accumulates.
type PriceQuote struct {
	Subtotal float64
	GST      float64
	QST      float64
	Total    float64
}

// QuoteService derives the taxed breakdown from a service base price.
// Pure and stateless.
func QuoteService(basePrice float64) PriceQuote {
	return PriceQuote{
		Subtotal: round2(basePrice),
		GST:      round2(basePrice * GSTRate),
		QST:      round2(basePrice * QSTRate),
		Total:    round2(basePrice * (1 + GSTRate + QSTRate)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

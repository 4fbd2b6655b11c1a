package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteService(t *testing.T) {
	quote := QuoteService(35.00)

	assert.Equal(t, 35.00, quote.Subtotal)
	assert.Equal(t, 1.75, quote.GST)
	assert.Equal(t, 3.49, quote.QST)
	assert.Equal(t, 40.24, quote.Total)
}

func TestQuoteService_TotalUsesCombinedRate(t *testing.T) {
	// The total is the base price times 1.14975 rounded once, not the
	// sum of the already rounded components.
	quote := QuoteService(4.90)

	assert.Equal(t, 4.90, quote.Subtotal)
	assert.Equal(t, 0.25, quote.GST)
	assert.Equal(t, 0.49, quote.QST)
	// 4.90 * 1.14975 = 5.633775, while 4.90 + 0.25 + 0.49 = 5.64.
	assert.Equal(t, 5.63, quote.Total)
}

func TestQuoteService_CatalogPrice(t *testing.T) {
	quote := QuoteService(45.00)

	assert.Equal(t, 45.00, quote.Subtotal)
	assert.Equal(t, 2.25, quote.GST)
	assert.Equal(t, 4.49, quote.QST)
	assert.Equal(t, 51.74, quote.Total)
}

func TestQuoteService_Zero(t *testing.T) {
	quote := QuoteService(0)

	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.GST)
	assert.Zero(t, quote.QST)
	assert.Zero(t, quote.Total)
}

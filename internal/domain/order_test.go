package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderGetSubtotal(t *testing.T) {
	order := &Order{
		Quantity: 3,
		Subtotal: 999.0, // stale stored value
		Product:  Product{Price: 10.5},
	}

	// the derived value wins over the stored column
	assert.Equal(t, 31.5, order.GetSubtotal())
}

func TestOrderGetSubtotalTracksPriceChange(t *testing.T) {
	order := &Order{Quantity: 2, Product: Product{Price: 5.0}}
	assert.Equal(t, 10.0, order.GetSubtotal())

	order.Product.Price = 7.5
	assert.Equal(t, 15.0, order.GetSubtotal())
}

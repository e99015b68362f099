package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

func TestSaleProductIDs_SortedRegardlessOfCartOrder(t *testing.T) {
	// Two carts with the same products in opposite order must request locks
	// identically, otherwise concurrent sales could deadlock.
	cartA := []domain.SaleLineItem{
		{ProductID: "prod-a", Quantity: 1},
		{ProductID: "prod-b", Quantity: 2},
	}
	cartB := []domain.SaleLineItem{
		{ProductID: "prod-b", Quantity: 1},
		{ProductID: "prod-a", Quantity: 3},
	}

	assert.Equal(t, []string{"prod-a", "prod-b"}, saleProductIDs(cartA))
	assert.Equal(t, saleProductIDs(cartA), saleProductIDs(cartB))
}

func TestSaleProductIDs_DeduplicatesRepeatedLines(t *testing.T) {
	items := []domain.SaleLineItem{
		{ProductID: "prod-a", Quantity: 1},
		{ProductID: "prod-a", Quantity: 2},
		{ProductID: "prod-c", Quantity: 1},
	}

	assert.Equal(t, []string{"prod-a", "prod-c"}, saleProductIDs(items))
}

func TestSaleProductIDs_EmptyCart(t *testing.T) {
	assert.Empty(t, saleProductIDs(nil))
}

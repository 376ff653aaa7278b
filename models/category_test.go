package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Fruits", CategoryName(1))
	assert.Equal(t, "Vegetables", CategoryName(2))
	assert.Equal(t, "Dairy", CategoryName(3))
	assert.Equal(t, "Plants", CategoryName(4))
	assert.Equal(t, "Others", CategoryName(5))

	// Anything outside the table falls back to Others.
	assert.Equal(t, DefaultCategoryName, CategoryName(0))
	assert.Equal(t, DefaultCategoryName, CategoryName(42))
}

func TestCategoryIDByName(t *testing.T) {
	id, ok := CategoryIDByName("Dairy")
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	_, ok = CategoryIDByName("Spices")
	assert.False(t, ok)
}

func TestLowStock(t *testing.T) {
	assert.True(t, Product{Quantity: 9}.LowStock())
	assert.True(t, Product{Quantity: 0}.LowStock())
	assert.False(t, Product{Quantity: 10}.LowStock())
}

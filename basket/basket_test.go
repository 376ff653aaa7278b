package basket

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-market/models"
)

func tomatoes() models.Product {
	return models.Product{ID: 1, Name: "Tomatoes", Price: 2.50, CategoryID: 2}
}

func appleSeeds() models.Product {
	return models.Product{ID: 2, Name: "Apple Seeds", Price: 1.00, CategoryID: 5}
}

func TestAddAccumulatesSameProduct(t *testing.T) {
	b := New(100)

	require.NoError(t, b.Add(tomatoes(), 2))
	require.NoError(t, b.Add(tomatoes(), 3))

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "Tomatoes", lines[0].Product.Name)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	b := New(100)

	require.NoError(t, b.Add(appleSeeds(), 1))
	require.NoError(t, b.Add(tomatoes(), 1))
	require.NoError(t, b.Add(appleSeeds(), 2))

	lines := b.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Product.ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Product.ID)
}

func TestAddRejectsInvalidQuantity(t *testing.T) {
	b := New(100)

	assert.ErrorIs(t, b.Add(tomatoes(), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, b.Add(tomatoes(), -3), ErrInvalidQuantity)
	assert.True(t, b.Empty())
}

func TestTotal(t *testing.T) {
	b := New(100)
	assert.Equal(t, 0.0, b.Total())

	require.NoError(t, b.Add(tomatoes(), 4))
	require.NoError(t, b.Add(appleSeeds(), 2))

	// 2.50*4 + 1.00*2
	assert.InDelta(t, 12.00, b.Total(), 1e-9)
}

func TestCheckoutDebitsAndClears(t *testing.T) {
	b := New(98323)
	require.NoError(t, b.Add(tomatoes(), 4))
	require.NoError(t, b.Add(appleSeeds(), 2))

	require.NoError(t, b.Checkout())

	assert.InDelta(t, 98311.00, b.Balance(), 1e-9)
	assert.True(t, b.Empty())
	assert.Equal(t, 0.0, b.Total())
}

func TestCheckoutInsufficientBalance(t *testing.T) {
	b := New(10)
	require.NoError(t, b.Add(tomatoes(), 4))
	require.NoError(t, b.Add(appleSeeds(), 2))

	err := b.Checkout()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientBalance))

	// Failed checkout changes nothing.
	assert.InDelta(t, 10.0, b.Balance(), 1e-9)
	assert.False(t, b.Empty())
	assert.InDelta(t, 12.00, b.Total(), 1e-9)
}

func TestCheckoutExactBalance(t *testing.T) {
	b := New(12)
	require.NoError(t, b.Add(tomatoes(), 4))
	require.NoError(t, b.Add(appleSeeds(), 2))

	require.NoError(t, b.Checkout())
	assert.InDelta(t, 0.0, b.Balance(), 1e-9)
	assert.True(t, b.Empty())
}

func TestClearIsIdempotent(t *testing.T) {
	b := New(50)
	require.NoError(t, b.Add(tomatoes(), 1))

	b.Clear()
	assert.True(t, b.Empty())
	b.Clear()
	assert.True(t, b.Empty())
	assert.InDelta(t, 50.0, b.Balance(), 1e-9)
}

func TestLinesReturnsCopy(t *testing.T) {
	b := New(50)
	require.NoError(t, b.Add(tomatoes(), 1))

	lines := b.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, b.Lines()[0].Quantity)
}

package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		category Category
		isValid  bool
	}{
		{CategoryChocolate, true},
		{CategoryJuice, true},
		{CategoryBox, true},
		{Category("Candy"), false},
		{Category(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.category.IsValid())
		})
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		p, err := NewProduct("1", "Master Belgian Truffles", "Dark chocolate truffles", "Authentic Brussels Craft",
			decimal.NewFromFloat(32.00), CategoryChocolate, "https://example.com/truffles.jpg")
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, "1", p.Code)
		assert.Equal(t, "Master Belgian Truffles", p.Name)
		assert.Equal(t, CategoryChocolate, p.Category)
		assert.True(t, p.Price.Equal(decimal.NewFromFloat(32.00)))
		assert.NotEqual(t, p.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewProduct("", "Name", "", "", decimal.NewFromInt(10), CategoryJuice, "")
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("1", "", "", "", decimal.NewFromInt(10), CategoryJuice, "")
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("1", "Name", "", "", decimal.NewFromInt(-1), CategoryJuice, "")
		assert.Error(t, err)
	})

	t.Run("allows zero price", func(t *testing.T) {
		_, err := NewProduct("1", "Sample", "", "", decimal.Zero, CategoryBox, "")
		assert.NoError(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewProduct("1", "Name", "", "", decimal.NewFromInt(10), Category("Candy"), "")
		assert.Error(t, err)
	})
}

func TestNewPlan(t *testing.T) {
	t.Run("creates plan with valid inputs", func(t *testing.T) {
		plan, err := NewPlan("premium", "Premium", decimal.NewFromInt(89), []string{"Priority shipping"})
		require.NoError(t, err)
		assert.Equal(t, "premium", plan.Code)
		assert.Equal(t, "Premium", plan.Name)
		assert.True(t, plan.PriceMoney().Amount().Equal(decimal.NewFromInt(89)))
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := NewPlan("free", "Free", decimal.Zero, nil)
		assert.Error(t, err)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewPlan("", "Premium", decimal.NewFromInt(89), nil)
		assert.Error(t, err)
	})
}

func TestProduct_PriceMoney(t *testing.T) {
	p, err := NewProduct("2", "Valencia Orange Sunrise", "Cold-pressed oranges", "Pure Zesty Vitality",
		decimal.NewFromFloat(12.00), CategoryJuice, "https://example.com/orange.jpg")
	require.NoError(t, err)

	m := p.PriceMoney()
	assert.Equal(t, "12.00", m.Display())
}

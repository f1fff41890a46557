package gen_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakemart/fakemart/internal/gen"
	"github.com/fakemart/fakemart/internal/models"
)

func isCents(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-9
}

func TestProducts_DenseIdentifiers(t *testing.T) {
	products, err := newGenerator(t, 42).Products(120)
	require.NoError(t, err)
	require.Len(t, products, 120)

	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestProducts_FieldRanges(t *testing.T) {
	products, err := newGenerator(t, 42).Products(100)
	require.NoError(t, err)

	catalogStart := fixedNow.AddDate(-2, 0, 0)
	valid := make(map[models.Category]bool, len(models.Categories))
	for _, c := range models.Categories {
		valid[c] = true
	}

	for _, p := range products {
		assert.True(t, valid[p.Category], "product %d has unknown category %q", p.ID, p.Category)
		assert.True(t, strings.HasPrefix(p.Subcategory, string(p.Category)+" - "),
			"product %d subcategory %q does not extend its category", p.ID, p.Subcategory)

		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.LessOrEqual(t, p.Price, 5000.0)
		assert.True(t, isCents(p.Price), "product %d price %v not rounded to cents", p.ID, p.Price)

		assert.GreaterOrEqual(t, p.Cost, 5.0)
		assert.LessOrEqual(t, p.Cost, 2500.0)
		assert.True(t, isCents(p.Cost), "product %d cost %v not rounded to cents", p.ID, p.Cost)

		assert.GreaterOrEqual(t, p.StockQty, 0)
		assert.LessOrEqual(t, p.StockQty, 1000)

		assert.Regexp(t, `^\d+x\d+x\d+$`, p.Dimensions)

		assert.False(t, p.CreatedAt.Before(catalogStart), "product %d cataloged too early", p.ID)
		assert.False(t, p.CreatedAt.After(fixedNow), "product %d cataloged in the future", p.ID)
	}
}

func TestProducts_ZeroCount(t *testing.T) {
	products, err := newGenerator(t, 42).Products(0)
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestProducts_NegativeCount(t *testing.T) {
	_, err := newGenerator(t, 42).Products(-3)
	require.ErrorIs(t, err, gen.ErrNegativeCount)
}

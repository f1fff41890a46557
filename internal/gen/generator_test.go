package gen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fakemart/fakemart/internal/gen"
)

// fixedNow pins the reference time so date-window assertions are exact.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newGenerator(t *testing.T, seed uint64) *gen.Generator {
	t.Helper()
	return gen.New(seed, gen.WithNow(fixedNow))
}

func TestGenerator_Determinism(t *testing.T) {
	counts := gen.Counts{Customers: 50, Products: 25, Orders: 80}

	first, err := newGenerator(t, 42).Dataset(counts)
	require.NoError(t, err)

	second, err := newGenerator(t, 42).Dataset(counts)
	require.NoError(t, err)

	require.Equal(t, first.Customers, second.Customers)
	require.Equal(t, first.Products, second.Products)
	require.Equal(t, first.Orders, second.Orders)
	require.Equal(t, first.Items, second.Items)
}

func TestGenerator_DifferentSeedsDiverge(t *testing.T) {
	first, err := newGenerator(t, 1).Customers(10)
	require.NoError(t, err)

	second, err := newGenerator(t, 2).Customers(10)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestGenerator_DatasetStagesAreConsistent(t *testing.T) {
	ds, err := newGenerator(t, 42).Dataset(gen.Counts{Customers: 100, Products: 50, Orders: 200})
	require.NoError(t, err)

	require.Len(t, ds.Customers, 100)
	require.Len(t, ds.Products, 50)
	require.Len(t, ds.Orders, 200)

	// 1 to 5 items per order.
	require.GreaterOrEqual(t, len(ds.Items), 200)
	require.LessOrEqual(t, len(ds.Items), 1000)

	require.NoError(t, gen.Verify(ds.Orders, ds.Products, ds.Items))

	for _, o := range ds.Orders {
		require.GreaterOrEqual(t, o.Total, 0.0, "order %d", o.ID)
	}
}

func TestGenerator_DatasetFailsWithoutCustomers(t *testing.T) {
	_, err := newGenerator(t, 42).Dataset(gen.Counts{Customers: 0, Products: 10, Orders: 5})
	require.ErrorIs(t, err, gen.ErrNoCustomers)
}

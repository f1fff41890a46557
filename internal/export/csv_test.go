package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fakemart/fakemart/internal/export"
	"github.com/fakemart/fakemart/internal/gen"
)

func readTable(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := gen.New(42, gen.WithNow(now))
	ds, err := g.Dataset(gen.Counts{Customers: 10, Products: 8, Orders: 15})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, export.WriteCSV(dir, ds))

	customers := readTable(t, filepath.Join(dir, export.CustomersFile))
	require.Len(t, customers, len(ds.Customers)+1)
	require.Equal(t, "id", customers[0][0])
	require.Equal(t, "1", customers[1][0])

	products := readTable(t, filepath.Join(dir, export.ProductsFile))
	require.Len(t, products, len(ds.Products)+1)

	orders := readTable(t, filepath.Join(dir, export.OrdersFile))
	require.Len(t, orders, len(ds.Orders)+1)

	items := readTable(t, filepath.Join(dir, export.OrderItemsFile))
	require.Len(t, items, len(ds.Items)+1)
	require.Equal(t, []string{"id", "order_id", "product_id", "quantity", "unit_price", "total", "discount"}, items[0])
}

func TestWriteCSV_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	counts := gen.Counts{Customers: 5, Products: 5, Orders: 10}

	dirA, dirB := t.TempDir(), t.TempDir()

	dsA, err := gen.New(7, gen.WithNow(now)).Dataset(counts)
	require.NoError(t, err)
	require.NoError(t, export.WriteCSV(dirA, dsA))

	dsB, err := gen.New(7, gen.WithNow(now)).Dataset(counts)
	require.NoError(t, err)
	require.NoError(t, export.WriteCSV(dirB, dsB))

	for _, name := range []string{export.CustomersFile, export.ProductsFile, export.OrdersFile, export.OrderItemsFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		require.Equal(t, a, b, "%s differs between identical runs", name)
	}
}

// Package export writes a generated dataset to row-oriented files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fakemart/fakemart/internal/gen"
)

// File names written by WriteCSV.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
)

// WriteCSV writes the four tables of a dataset as CSV files into dir,
// creating the directory if needed. Timestamps are RFC 3339, dates are
// YYYY-MM-DD, money fields keep two decimals.
func WriteCSV(dir string, ds *gen.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeTable(filepath.Join(dir, CustomersFile), customerHeader, customerRecords(ds)); err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, ProductsFile), productHeader, productRecords(ds)); err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, OrdersFile), orderHeader, orderRecords(ds)); err != nil {
		return err
	}
	return writeTable(filepath.Join(dir, OrderItemsFile), itemHeader, itemRecords(ds))
}

var (
	customerHeader = []string{"id", "name", "email", "phone", "tax_id", "birth_date",
		"street", "city", "state", "postal_code", "registered_at", "active"}
	productHeader = []string{"id", "name", "description", "category", "subcategory",
		"price", "cost", "stock_qty", "supplier", "weight_kg", "dimensions", "active", "created_at"}
	orderHeader = []string{"id", "customer_id", "ordered_at", "total", "freight", "discount",
		"status", "payment_method", "installments", "coupon_code", "updated_at"}
	itemHeader = []string{"id", "order_id", "product_id", "quantity", "unit_price", "total", "discount"}
)

func customerRecords(ds *gen.Dataset) [][]string {
	records := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		records = append(records, []string{
			formatID(c.ID), c.Name, c.Email, c.Phone, c.TaxID,
			c.BirthDate.Format("2006-01-02"),
			c.Street, c.City, c.State, c.PostalCode,
			c.RegisteredAt.Format(time.RFC3339),
			strconv.FormatBool(c.Active),
		})
	}
	return records
}

func productRecords(ds *gen.Dataset) [][]string {
	records := make([][]string, 0, len(ds.Products))
	for _, p := range ds.Products {
		records = append(records, []string{
			formatID(p.ID), p.Name, p.Description, string(p.Category), p.Subcategory,
			formatMoney(p.Price), formatMoney(p.Cost),
			strconv.Itoa(p.StockQty), p.Supplier,
			formatMoney(p.WeightKg), p.Dimensions,
			strconv.FormatBool(p.Active),
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	return records
}

func orderRecords(ds *gen.Dataset) [][]string {
	records := make([][]string, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		records = append(records, []string{
			formatID(o.ID), formatID(o.CustomerID),
			o.OrderedAt.Format(time.RFC3339),
			formatMoney(o.Total), formatMoney(o.Freight), formatMoney(o.Discount),
			string(o.Status), string(o.PaymentMethod),
			strconv.Itoa(o.Installments), o.CouponCode,
			o.UpdatedAt.Format(time.RFC3339),
		})
	}
	return records
}

func itemRecords(ds *gen.Dataset) [][]string {
	records := make([][]string, 0, len(ds.Items))
	for _, item := range ds.Items {
		records = append(records, []string{
			formatID(item.ID), formatID(item.OrderID), formatID(item.ProductID),
			strconv.Itoa(item.Quantity),
			formatMoney(item.UnitPrice), formatMoney(item.Total), formatMoney(item.Discount),
		})
	}
	return records
}

func writeTable(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

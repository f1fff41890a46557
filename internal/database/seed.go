package database

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/fakemart/fakemart/internal/gen"
)

// InsertDataset bulk-inserts a generated dataset. Tables are written
// in dependency order so the foreign keys hold at every point. When
// showProgress is set a progress bar tracks row inserts on stderr.
func (db *DB) InsertDataset(ds *gen.Dataset, showProgress bool) error {
	total := len(ds.Customers) + len(ds.Products) + len(ds.Orders) + len(ds.Items)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(total), "seeding")
	}
	step := func() {
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err := db.insertCustomers(ds, step); err != nil {
		return fmt.Errorf("insert customers: %w", err)
	}
	if err := db.insertProducts(ds, step); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	if err := db.insertOrders(ds, step); err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	if err := db.insertItems(ds, step); err != nil {
		return fmt.Errorf("insert order items: %w", err)
	}

	return nil
}

func (db *DB) insertCustomers(ds *gen.Dataset, step func()) error {
	stmt, err := db.Prepare(`
		INSERT INTO customers (id, name, email, phone, tax_id, birth_date,
			street, city, state, postal_code, registered_at, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range ds.Customers {
		_, err := stmt.Exec(c.ID, c.Name, c.Email, c.Phone, c.TaxID, c.BirthDate,
			c.Street, c.City, c.State, c.PostalCode, c.RegisteredAt, c.Active)
		if err != nil {
			return fmt.Errorf("customer %d: %w", c.ID, err)
		}
		step()
	}

	return nil
}

func (db *DB) insertProducts(ds *gen.Dataset, step func()) error {
	stmt, err := db.Prepare(`
		INSERT INTO products (id, name, description, category, subcategory,
			price, cost, stock_qty, supplier, weight_kg, dimensions, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range ds.Products {
		_, err := stmt.Exec(p.ID, p.Name, p.Description, string(p.Category), p.Subcategory,
			p.Price, p.Cost, p.StockQty, p.Supplier, p.WeightKg, p.Dimensions, p.Active, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("product %d: %w", p.ID, err)
		}
		step()
	}

	return nil
}

func (db *DB) insertOrders(ds *gen.Dataset, step func()) error {
	stmt, err := db.Prepare(`
		INSERT INTO orders (id, customer_id, ordered_at, total, freight, discount,
			status, payment_method, installments, coupon_code, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range ds.Orders {
		var coupon any
		if o.CouponCode != "" {
			coupon = o.CouponCode
		}
		_, err := stmt.Exec(o.ID, o.CustomerID, o.OrderedAt, o.Total, o.Freight, o.Discount,
			string(o.Status), string(o.PaymentMethod), o.Installments, coupon, o.UpdatedAt)
		if err != nil {
			return fmt.Errorf("order %d: %w", o.ID, err)
		}
		step()
	}

	return nil
}

func (db *DB) insertItems(ds *gen.Dataset, step func()) error {
	stmt, err := db.Prepare(`
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total, discount)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range ds.Items {
		_, err := stmt.Exec(item.ID, item.OrderID, item.ProductID,
			item.Quantity, item.UnitPrice, item.Total, item.Discount)
		if err != nil {
			return fmt.Errorf("order item %d: %w", item.ID, err)
		}
		step()
	}

	return nil
}

package database

// SetupSchema creates the four dataset tables.
func (db *DB) SetupSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
		    id BIGINT PRIMARY KEY,
		    name VARCHAR(255) NOT NULL,
		    email VARCHAR(255) NOT NULL,
		    phone VARCHAR(64),
		    tax_id VARCHAR(32),
		    birth_date DATE,
		    street VARCHAR(255),
		    city VARCHAR(100),
		    state VARCHAR(10),
		    postal_code VARCHAR(20),
		    registered_at TIMESTAMP NOT NULL,
		    active BOOLEAN NOT NULL DEFAULT TRUE,
		    INDEX idx_email (email),
		    INDEX idx_city (city),
		    INDEX idx_registered_at (registered_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS products (
		    id BIGINT PRIMARY KEY,
		    name VARCHAR(255) NOT NULL,
		    description TEXT,
		    category VARCHAR(100) NOT NULL,
		    subcategory VARCHAR(150),
		    price DECIMAL(10,2) NOT NULL,
		    cost DECIMAL(10,2) NOT NULL,
		    stock_qty INT NOT NULL DEFAULT 0,
		    supplier VARCHAR(200),
		    weight_kg DECIMAL(6,2),
		    dimensions VARCHAR(32),
		    active BOOLEAN NOT NULL DEFAULT TRUE,
		    created_at TIMESTAMP NOT NULL,
		    INDEX idx_category (category),
		    INDEX idx_price (price),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id BIGINT PRIMARY KEY,
		    customer_id BIGINT NOT NULL,
		    ordered_at TIMESTAMP NOT NULL,
		    total DECIMAL(10,2) NOT NULL,
		    freight DECIMAL(10,2) NOT NULL,
		    discount DECIMAL(10,2) NOT NULL,
		    status ENUM('pending', 'processing', 'shipped', 'delivered', 'cancelled') DEFAULT 'pending',
		    payment_method ENUM('credit_card', 'debit_card', 'pix', 'boleto') NOT NULL,
		    installments INT NOT NULL DEFAULT 1,
		    coupon_code VARCHAR(32) NULL,
		    updated_at TIMESTAMP NOT NULL,
		    FOREIGN KEY (customer_id) REFERENCES customers(id),
		    INDEX idx_customer_id (customer_id),
		    INDEX idx_status (status),
		    INDEX idx_ordered_at (ordered_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS order_items (
		    id BIGINT PRIMARY KEY,
		    order_id BIGINT NOT NULL,
		    product_id BIGINT NOT NULL,
		    quantity INT NOT NULL,
		    unit_price DECIMAL(10,2) NOT NULL,
		    total DECIMAL(10,2) NOT NULL,
		    discount DECIMAL(10,2) NOT NULL DEFAULT 0,
		    FOREIGN KEY (order_id) REFERENCES orders(id),
		    FOREIGN KEY (product_id) REFERENCES products(id),
		    INDEX idx_order_id (order_id),
		    INDEX idx_product_id (product_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CleanupData removes all rows from the dataset tables (but keeps schema)
func (db *DB) CleanupData() error {
	queries := []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM products",
		"DELETE FROM customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all dataset tables
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS products",
		"DROP TABLE IF EXISTS customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

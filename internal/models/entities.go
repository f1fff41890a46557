package models

import (
	"time"
)

// Customer represents one row of the generated customers table.
type Customer struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	TaxID        string    `json:"tax_id" db:"tax_id"`
	BirthDate    time.Time `json:"birth_date" db:"birth_date"`
	Street       string    `json:"street" db:"street"`
	City         string    `json:"city" db:"city"`
	State        string    `json:"state" db:"state"`
	PostalCode   string    `json:"postal_code" db:"postal_code"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
	Active       bool      `json:"active" db:"active"`
}

// Product represents one row of the generated products table.
type Product struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	Category    Category `json:"category" db:"category"`
	Subcategory string   `json:"subcategory" db:"subcategory"`
	Price       float64  `json:"price" db:"price"`
	Cost        float64  `json:"cost" db:"cost"`
	StockQty    int      `json:"stock_qty" db:"stock_qty"`
	Supplier    string   `json:"supplier" db:"supplier"`
	WeightKg    float64  `json:"weight_kg" db:"weight_kg"`
	Dimensions  string   `json:"dimensions" db:"dimensions"`
	Active      bool     `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Order represents one row of the generated orders table. Total is a
// placeholder until the order items are generated; every other field
// is final at creation.
type Order struct {
	ID            int64         `json:"id" db:"id"`
	CustomerID    int64         `json:"customer_id" db:"customer_id"`
	OrderedAt     time.Time     `json:"ordered_at" db:"ordered_at"`
	Total         float64       `json:"total" db:"total"`
	Freight       float64       `json:"freight" db:"freight"`
	Discount      float64       `json:"discount" db:"discount"`
	Status        OrderStatus   `json:"status" db:"status"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	Installments  int           `json:"installments" db:"installments"`
	CouponCode    string        `json:"coupon_code,omitempty" db:"coupon_code"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// OrderItem represents one row of the generated order_items table.
// UnitPrice is a snapshot of the product price at generation time.
// Discount is informational only and is never subtracted from Total.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Total     float64 `json:"total" db:"total"`
	Discount  float64 `json:"discount" db:"discount"`
}

// Category is a product category label.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
	CategoryToys        Category = "toys"
	CategoryBeauty      Category = "beauty"
	CategoryFood        Category = "food"
	CategoryComputers   Category = "computers"
	CategoryTools       Category = "tools"
)

// Categories lists every product category a generator may pick.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHome,
	CategorySports,
	CategoryToys,
	CategoryBeauty,
	CategoryFood,
	CategoryComputers,
	CategoryTools,
}

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// PaymentMethod is how an order was paid.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

// PaymentMethods lists every valid payment method.
var PaymentMethods = []PaymentMethod{
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentPix,
	PaymentBoleto,
}

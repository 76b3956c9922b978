package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"northwind/internal/config"
	"northwind/internal/infrastructure/sqlite"
)

// SetupTestDB opens a fresh SQLite database in the test's temp
// directory with the schema applied. No external server is involved,
// so these tests never skip.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.NewConnection(config.DatabaseConfig{
		Path:            filepath.Join(t.TempDir(), "northwind-test.db"),
		MaxOpenConns:    2,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}

// SeedReferenceData inserts the customer, employee, shipper, supplier,
// category and product rows that order rows reference.
func SeedReferenceData(t *testing.T, db *sql.DB) {
	t.Helper()

	statements := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO Customers (CustomerId, CompanyName) VALUES (?, ?)`, []any{"ALFKI", "Alfreds Futterkiste"}},
		{`INSERT INTO Customers (CustomerId, CompanyName) VALUES (?, ?)`, []any{"ANATR", "Ana Trujillo Emparedados y helados"}},
		{`INSERT INTO Employees (EmployeeId, FirstName, LastName, Country) VALUES (?, ?, ?, ?)`, []any{1, "Nancy", "Davolio", "USA"}},
		{`INSERT INTO Employees (EmployeeId, FirstName, LastName, Country) VALUES (?, ?, ?, ?)`, []any{2, "Andrew", "Fuller", "UK"}},
		{`INSERT INTO Shippers (ShipperId, CompanyName) VALUES (?, ?)`, []any{1, "Speedy Express"}},
		{`INSERT INTO Shippers (ShipperId, CompanyName) VALUES (?, ?)`, []any{2, "United Package"}},
		{`INSERT INTO Shippers (ShipperId, CompanyName) VALUES (?, ?)`, []any{3, "Federal Shipping"}},
		{`INSERT INTO Suppliers (SupplierId, CompanyName) VALUES (?, ?)`, []any{5, "Cooperativa de Quesos 'Las Cabras'"}},
		{`INSERT INTO Suppliers (SupplierId, CompanyName) VALUES (?, ?)`, []any{20, "Leka Trading"}},
		{`INSERT INTO Categories (CategoryId, CategoryName) VALUES (?, ?)`, []any{4, "Dairy Products"}},
		{`INSERT INTO Categories (CategoryId, CategoryName) VALUES (?, ?)`, []any{5, "Grains/Cereals"}},
		{`INSERT INTO Products (ProductId, ProductName, CategoryId, SupplierId) VALUES (?, ?, ?, ?)`, []any{11, "Queso Cabrales", 4, 5}},
		{`INSERT INTO Products (ProductId, ProductName, CategoryId, SupplierId) VALUES (?, ?, ?, ?)`, []any{42, "Singaporean Hokkien Fried Mee", 5, 20}},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt.query, stmt.args...); err != nil {
			t.Fatalf("failed to seed reference data: %v", err)
		}
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"northwind/internal/domain"
)

// Saving an order also writes the current attribute snapshots of the
// referenced customer, employee, shipper, product, supplier and
// category back onto their own tables. These writes reach outside the
// aggregate boundary; they are kept here so a future split into
// separate repository calls only has to move these two functions.

func updateReferencedParties(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE Customers SET CompanyName = ? WHERE CustomerId = ?`,
		order.Customer.CompanyName, string(order.Customer.Code))
	if err != nil {
		return fmt.Errorf("updating customer %s: %w", order.Customer.Code, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Employees SET FirstName = ?, LastName = ?, Country = ? WHERE EmployeeId = ?`,
		order.Employee.FirstName, order.Employee.LastName, order.Employee.Country, order.Employee.ID)
	if err != nil {
		return fmt.Errorf("updating employee %d: %w", order.Employee.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Shippers SET CompanyName = ? WHERE ShipperId = ?`,
		order.Shipper.CompanyName, order.Shipper.ID)
	if err != nil {
		return fmt.Errorf("updating shipper %d: %w", order.Shipper.ID, err)
	}

	return nil
}

func updateReferencedProduct(ctx context.Context, tx *sql.Tx, product *domain.Product) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE Products SET ProductName = ? WHERE ProductId = ?`,
		product.Name, product.ID)
	if err != nil {
		return fmt.Errorf("updating product %d: %w", product.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Suppliers SET CompanyName = ? WHERE SupplierId = ?`,
		product.Supplier, product.SupplierID)
	if err != nil {
		return fmt.Errorf("updating supplier %d: %w", product.SupplierID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Categories SET CategoryName = ? WHERE CategoryId = ?`,
		product.Category, product.CategoryID)
	if err != nil {
		return fmt.Errorf("updating category %d: %w", product.CategoryID, err)
	}

	return nil
}

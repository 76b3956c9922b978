package repository

import (
	"context"
	"database/sql"
	"fmt"

	"northwind/internal/domain"
	apperrors "northwind/internal/errors"
)

const (
	insertOrderQuery = `
		INSERT INTO Orders (OrderId, CustomerId, EmployeeId, OrderDate, RequiredDate, ShippedDate,
		                    ShipVia, Freight, ShipName, ShipAddress, ShipCity, ShipRegion, ShipPostalCode, ShipCountry)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	updateOrderQuery = `
		UPDATE Orders
		SET CustomerId = ?, EmployeeId = ?, OrderDate = ?, RequiredDate = ?, ShippedDate = ?,
		    ShipVia = ?, Freight = ?, ShipName = ?, ShipAddress = ?, ShipCity = ?, ShipRegion = ?,
		    ShipPostalCode = ?, ShipCountry = ?
		WHERE OrderId = ?
	`

	insertDetailQuery = `
		INSERT INTO OrderDetails (OrderId, ProductId, UnitPrice, Quantity, Discount)
		VALUES (?, ?, ?, ?, ?)
	`

	selectOrderQuery = `
		SELECT Orders.OrderId, Orders.CustomerId, Orders.EmployeeId,
		       Orders.OrderDate, Orders.RequiredDate, Orders.ShippedDate,
		       Orders.ShipVia, Orders.Freight, Orders.ShipName,
		       Orders.ShipAddress, Orders.ShipCity, Orders.ShipRegion, Orders.ShipPostalCode, Orders.ShipCountry,
		       Customers.CompanyName AS CustomerCompanyName,
		       Employees.FirstName, Employees.LastName, Employees.Country,
		       Shippers.CompanyName AS ShipperCompanyName
		FROM Orders
		JOIN Customers ON Orders.CustomerId = Customers.CustomerId
		JOIN Employees ON Orders.EmployeeId = Employees.EmployeeId
		JOIN Shippers ON Orders.ShipVia = Shippers.ShipperId
		WHERE Orders.OrderId = ?
	`

	selectDetailsQuery = `
		SELECT OrderDetails.UnitPrice, OrderDetails.Quantity, OrderDetails.Discount,
		       Products.ProductId, Products.ProductName, Products.CategoryId, Products.SupplierId,
		       Suppliers.CompanyName, Categories.CategoryName
		FROM OrderDetails
		JOIN Products ON OrderDetails.ProductId = Products.ProductId
		JOIN Suppliers ON Products.SupplierId = Suppliers.SupplierId
		JOIN Categories ON Products.CategoryId = Categories.CategoryId
		WHERE OrderDetails.OrderId = ?
	`
)

// SQLiteOrderRepository persists the Order aggregate across the
// Orders/OrderDetails tables and the referenced party tables. It holds
// a *sql.DB pool, so each operation runs on its own connection and
// instances are safe for concurrent use.
type SQLiteOrderRepository struct {
	db *sql.DB
}

func NewSQLiteOrderRepository(db *sql.DB) *SQLiteOrderRepository {
	return &SQLiteOrderRepository{db: db}
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func orderExists(ctx context.Context, q rowQuerier, id int64) (bool, error) {
	var n int64
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM Orders WHERE OrderId = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("counting orders with id %d: %w", id, err)
	}
	return n > 0, nil
}

// ListOrderIDs returns up to count order ids in ascending order,
// skipping the first skip ids. The admissible parameter combinations
// are deliberately asymmetric: (0, 0) is rejected while (0, n) and
// (n, 0) for n > 0 are not.
func (r *SQLiteOrderRepository) ListOrderIDs(ctx context.Context, skip, count int) ([]int64, error) {
	if (skip < 1 && count < 1) || skip < 0 || count < 0 {
		return nil, apperrors.NewInvalidArgumentError(
			fmt.Sprintf("paging parameters out of range: skip=%d count=%d", skip, count))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT OrderId FROM Orders ORDER BY OrderId LIMIT ? OFFSET ?`, count, skip)
	if err != nil {
		return nil, fmt.Errorf("listing order ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, count)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning order id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order ids: %w", err)
	}

	return ids, nil
}

// GetOrder reconstructs the full aggregate: the order row joined with
// its customer, employee and shipper, then every detail row joined
// with its product, supplier and category, appended in result order.
func (r *SQLiteOrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	exists, err := orderExists(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	rows, err := r.db.QueryContext(ctx, selectOrderQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying order %d: %w", id, err)
	}
	defer rows.Close()

	var order *domain.Order
	for rows.Next() {
		// The id is unique upstream; a later row would overwrite.
		if order, err = scanOrderHeader(rows); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}
	if order == nil {
		// The order vanished between the existence check and the
		// fetch; reads run outside a transaction, so this window is
		// narrow but real.
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	detailRows, err := r.db.QueryContext(ctx, selectDetailsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying details of order %d: %w", id, err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		detail, err := scanOrderDetail(detailRows, order.ID)
		if err != nil {
			return nil, err
		}
		order.Details = append(order.Details, detail)
	}
	if err := detailRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating detail rows: %w", err)
	}

	return order, nil
}

// AddOrder inserts the aggregate inside one transaction. An id that is
// already present is treated as success: the existing rows are left
// untouched and the id is returned (upsert-ignore, never overwrite).
func (r *SQLiteOrderRepository) AddOrder(ctx context.Context, order *domain.Order) (int64, error) {
	if err := order.Validate(); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	exists, err := orderExists(ctx, tx, order.ID)
	if err != nil {
		return 0, err
	}
	if exists {
		return order.ID, nil
	}

	if _, err := tx.ExecContext(ctx, insertOrderQuery, orderInsertArgs(order)...); err != nil {
		return 0, fmt.Errorf("inserting order %d: %w", order.ID, err)
	}

	for i := range order.Details {
		if _, err := tx.ExecContext(ctx, insertDetailQuery, detailInsertArgs(&order.Details[i])...); err != nil {
			return 0, fmt.Errorf("inserting detail of order %d: %w", order.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing order %d: %w", order.ID, err)
	}

	return order.ID, nil
}

// UpdateOrder rewrites the aggregate: the order row, the denormalized
// attributes of every referenced party, and the detail set as a full
// delete-then-reinsert replace. Detail rows are not diffed; the table
// holds exactly the in-memory collection after commit.
func (r *SQLiteOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := orderExists(ctx, tx, order.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", order.ID))
	}

	if _, err := tx.ExecContext(ctx, updateOrderQuery, orderUpdateArgs(order)...); err != nil {
		return fmt.Errorf("updating order %d: %w", order.ID, err)
	}

	if err := updateReferencedParties(ctx, tx, order); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM OrderDetails WHERE OrderId = ?`, order.ID); err != nil {
		return fmt.Errorf("deleting details of order %d: %w", order.ID, err)
	}

	for i := range order.Details {
		detail := &order.Details[i]
		args := detailInsertArgs(detail)
		args[0] = order.ID
		if _, err := tx.ExecContext(ctx, insertDetailQuery, args...); err != nil {
			return fmt.Errorf("reinserting detail of order %d: %w", order.ID, err)
		}
		if err := updateReferencedProduct(ctx, tx, detail.Product); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order %d: %w", order.ID, err)
	}

	return nil
}

// RemoveOrder deletes the detail rows and then the order row as two
// standalone statements. An unknown id deletes zero rows and is not
// an error.
func (r *SQLiteOrderRepository) RemoveOrder(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM OrderDetails WHERE OrderId = ?`, id); err != nil {
		return fmt.Errorf("deleting details of order %d: %w", id, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM Orders WHERE OrderId = ?`, id); err != nil {
		return fmt.Errorf("deleting order %d: %w", id, err)
	}
	return nil
}

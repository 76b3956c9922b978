package repository

import (
	"database/sql"
	"fmt"
	"time"

	"northwind/internal/domain"
	apperrors "northwind/internal/errors"
)

func parseDate(column, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewParseError(fmt.Sprintf("malformed %s", column), err)
	}
	return t, nil
}

// scanOrderHeader maps one row of the Orders join (order columns plus
// the denormalized customer, employee and shipper names) onto a fresh
// aggregate with an empty detail collection.
func scanOrderHeader(rows *sql.Rows) (*domain.Order, error) {
	var (
		id           int64
		customerCode string
		employeeID   int64
		orderDate    string
		requiredDate string
		shippedDate  string
		shipVia      int64
		freight      float64
		shipName     string
		address      string
		city         string
		region       sql.NullString
		postalCode   string
		country      string

		customerCompany string
		firstName       string
		lastName        string
		empCountry      string
		shipperCompany  string
	)

	err := rows.Scan(
		&id, &customerCode, &employeeID, &orderDate, &requiredDate, &shippedDate,
		&shipVia, &freight, &shipName, &address, &city, &region, &postalCode, &country,
		&customerCompany, &firstName, &lastName, &empCountry, &shipperCompany,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning order row: %w", err)
	}

	order := &domain.Order{
		ID: id,
		Customer: &domain.Customer{
			Code:        domain.CustomerCode(customerCode),
			CompanyName: customerCompany,
		},
		Employee: &domain.Employee{
			ID:        employeeID,
			FirstName: firstName,
			LastName:  lastName,
			Country:   empCountry,
		},
		Shipper: &domain.Shipper{
			ID:          shipVia,
			CompanyName: shipperCompany,
		},
		Freight:  freight,
		ShipName: shipName,
		ShippingAddress: domain.ShippingAddress{
			Address:    address,
			City:       city,
			PostalCode: postalCode,
			Country:    country,
		},
	}
	if region.Valid {
		order.ShippingAddress.Region = &region.String
	}

	if order.OrderDate, err = parseDate("OrderDate", orderDate); err != nil {
		return nil, err
	}
	if order.RequiredDate, err = parseDate("RequiredDate", requiredDate); err != nil {
		return nil, err
	}
	if order.ShippedDate, err = parseDate("ShippedDate", shippedDate); err != nil {
		return nil, err
	}

	return order, nil
}

// scanOrderDetail maps one row of the OrderDetails join (detail
// columns plus the denormalized product, supplier and category names).
func scanOrderDetail(rows *sql.Rows, orderID int64) (domain.OrderDetail, error) {
	var (
		unitPrice    float64
		quantity     int64
		discount     float64
		productID    int64
		productName  string
		categoryID   int64
		supplierID   int64
		supplierName string
		categoryName string
	)

	err := rows.Scan(
		&unitPrice, &quantity, &discount,
		&productID, &productName, &categoryID, &supplierID,
		&supplierName, &categoryName,
	)
	if err != nil {
		return domain.OrderDetail{}, fmt.Errorf("scanning order detail row: %w", err)
	}

	return domain.OrderDetail{
		OrderID: orderID,
		Product: &domain.Product{
			ID:         productID,
			Name:       productName,
			CategoryID: categoryID,
			Category:   categoryName,
			SupplierID: supplierID,
			Supplier:   supplierName,
		},
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Discount:  discount,
	}, nil
}

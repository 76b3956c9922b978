package repository

import (
	"time"

	"northwind/internal/domain"
)

// Dates live in TEXT columns; this layout is fixed and locale
// independent on both the write and the read path.
const dateLayout = "2006-01-02 15:04:05"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// nullableString binds an optional field, storing NULL when absent.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func orderInsertArgs(o *domain.Order) []any {
	return []any{
		o.ID,
		string(o.Customer.Code),
		o.Employee.ID,
		formatDate(o.OrderDate),
		formatDate(o.RequiredDate),
		formatDate(o.ShippedDate),
		o.Shipper.ID,
		o.Freight,
		o.ShipName,
		o.ShippingAddress.Address,
		o.ShippingAddress.City,
		nullableString(o.ShippingAddress.Region),
		o.ShippingAddress.PostalCode,
		o.ShippingAddress.Country,
	}
}

// orderUpdateArgs binds the SET columns first, the WHERE id last.
func orderUpdateArgs(o *domain.Order) []any {
	return []any{
		string(o.Customer.Code),
		o.Employee.ID,
		formatDate(o.OrderDate),
		formatDate(o.RequiredDate),
		formatDate(o.ShippedDate),
		o.Shipper.ID,
		o.Freight,
		o.ShipName,
		o.ShippingAddress.Address,
		o.ShippingAddress.City,
		nullableString(o.ShippingAddress.Region),
		o.ShippingAddress.PostalCode,
		o.ShippingAddress.Country,
		o.ID,
	}
}

func detailInsertArgs(d *domain.OrderDetail) []any {
	return []any{
		d.OrderID,
		d.Product.ID,
		d.UnitPrice,
		d.Quantity,
		d.Discount,
	}
}

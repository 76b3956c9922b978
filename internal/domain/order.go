package domain

import (
	"fmt"
	"time"

	"northwind/internal/errors"
)

// Order is the aggregate root: the order row plus its owned detail
// collection and value-copies of the referenced customer, employee
// and shipper. Ids are assigned by the caller, never by the store.
type Order struct {
	ID              int64
	Customer        *Customer
	Employee        *Employee
	Shipper         *Shipper
	OrderDate       time.Time
	RequiredDate    time.Time
	ShippedDate     time.Time
	Freight         float64
	ShipName        string
	ShippingAddress ShippingAddress
	Details         []OrderDetail
}

// OrderDetail has no identity of its own beyond (OrderID, ProductID).
type OrderDetail struct {
	OrderID   int64
	Product   *Product
	UnitPrice float64
	Quantity  int64
	Discount  float64
}

type ShippingAddress struct {
	Address    string
	City       string
	Region     *string // NULL in storage when absent
	PostalCode string
	Country    string
}

// Validate checks the aggregate invariants before any write is
// attempted. It stops at the first failing detail; an order with no
// details is valid.
func (o *Order) Validate() error {
	var details []errors.ValidationDetail

	if o.ID <= 0 {
		details = append(details, errors.ValidationDetail{
			Field:   "id",
			Message: "order id must be a positive integer",
		})
	}
	if o.Customer == nil {
		details = append(details, errors.ValidationDetail{
			Field:   "customer",
			Message: "customer is required",
		})
	}
	if o.Employee == nil {
		details = append(details, errors.ValidationDetail{
			Field:   "employee",
			Message: "employee is required",
		})
	}
	if len(details) > 0 {
		return errors.NewValidationError("invalid order", details...)
	}

	for i, d := range o.Details {
		if detail, ok := d.validate(i); !ok {
			return errors.NewValidationError("invalid order detail", detail)
		}
	}

	return nil
}

func (d *OrderDetail) validate(index int) (errors.ValidationDetail, bool) {
	field := func(name string) string {
		return fmt.Sprintf("details[%d].%s", index, name)
	}

	switch {
	case d.OrderID <= 0:
		return errors.ValidationDetail{
			Field:   field("orderId"),
			Message: "detail order id must be a positive integer",
		}, false
	case d.Product == nil || d.Product.ID <= 0:
		return errors.ValidationDetail{
			Field:   field("product"),
			Message: "detail product must have a positive id",
		}, false
	case d.UnitPrice <= 0:
		return errors.ValidationDetail{
			Field:   field("unitPrice"),
			Message: "unit price must be greater than zero",
		}, false
	case d.Quantity <= 0:
		return errors.ValidationDetail{
			Field:   field("quantity"),
			Message: "quantity must be greater than zero",
		}, false
	case d.Discount < 0:
		return errors.ValidationDetail{
			Field:   field("discount"),
			Message: "discount must not be negative",
		}, false
	}

	return errors.ValidationDetail{}, true
}

package dto

import (
	"time"

	"northwind/internal/domain"
)

type Order struct {
	ID              int64           `json:"id"`
	Customer        Customer        `json:"customer"`
	Employee        Employee        `json:"employee"`
	Shipper         Shipper         `json:"shipper"`
	OrderDate       time.Time       `json:"orderDate"`
	RequiredDate    time.Time       `json:"requiredDate"`
	ShippedDate     time.Time       `json:"shippedDate"`
	Freight         float64         `json:"freight"`
	ShipName        string          `json:"shipName"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Details         []OrderDetail   `json:"details"`
}

type Customer struct {
	Code        string `json:"code"`
	CompanyName string `json:"companyName"`
}

type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
}

type Shipper struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
}

type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
	Category   string `json:"category"`
	SupplierID int64  `json:"supplierId"`
	Supplier   string `json:"supplier"`
}

type ShippingAddress struct {
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Region     *string `json:"region,omitempty"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
}

type OrderDetail struct {
	Product   Product `json:"product"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int64   `json:"quantity"`
	Discount  float64 `json:"discount"`
}

func (o Order) ToDomain() *domain.Order {
	order := &domain.Order{
		ID: o.ID,
		Customer: &domain.Customer{
			Code:        domain.CustomerCode(o.Customer.Code),
			CompanyName: o.Customer.CompanyName,
		},
		Employee: &domain.Employee{
			ID:        o.Employee.ID,
			FirstName: o.Employee.FirstName,
			LastName:  o.Employee.LastName,
			Country:   o.Employee.Country,
		},
		Shipper: &domain.Shipper{
			ID:          o.Shipper.ID,
			CompanyName: o.Shipper.CompanyName,
		},
		OrderDate:    o.OrderDate,
		RequiredDate: o.RequiredDate,
		ShippedDate:  o.ShippedDate,
		Freight:      o.Freight,
		ShipName:     o.ShipName,
		ShippingAddress: domain.ShippingAddress{
			Address:    o.ShippingAddress.Address,
			City:       o.ShippingAddress.City,
			Region:     o.ShippingAddress.Region,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
		},
	}

	for _, d := range o.Details {
		order.Details = append(order.Details, domain.OrderDetail{
			OrderID: o.ID,
			Product: &domain.Product{
				ID:         d.Product.ID,
				Name:       d.Product.Name,
				CategoryID: d.Product.CategoryID,
				Category:   d.Product.Category,
				SupplierID: d.Product.SupplierID,
				Supplier:   d.Product.Supplier,
			},
			UnitPrice: d.UnitPrice,
			Quantity:  d.Quantity,
			Discount:  d.Discount,
		})
	}

	return order
}

func OrderFromDomain(order *domain.Order) Order {
	o := Order{
		ID: order.ID,
		Customer: Customer{
			Code:        string(order.Customer.Code),
			CompanyName: order.Customer.CompanyName,
		},
		Employee: Employee{
			ID:        order.Employee.ID,
			FirstName: order.Employee.FirstName,
			LastName:  order.Employee.LastName,
			Country:   order.Employee.Country,
		},
		Shipper: Shipper{
			ID:          order.Shipper.ID,
			CompanyName: order.Shipper.CompanyName,
		},
		OrderDate:    order.OrderDate,
		RequiredDate: order.RequiredDate,
		ShippedDate:  order.ShippedDate,
		Freight:      order.Freight,
		ShipName:     order.ShipName,
		ShippingAddress: ShippingAddress{
			Address:    order.ShippingAddress.Address,
			City:       order.ShippingAddress.City,
			Region:     order.ShippingAddress.Region,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
	}

	for _, d := range order.Details {
		o.Details = append(o.Details, OrderDetail{
			Product: Product{
				ID:         d.Product.ID,
				Name:       d.Product.Name,
				CategoryID: d.Product.CategoryID,
				Category:   d.Product.Category,
				SupplierID: d.Product.SupplierID,
				Supplier:   d.Product.Supplier,
			},
			UnitPrice: d.UnitPrice,
			Quantity:  d.Quantity,
			Discount:  d.Discount,
		})
	}

	return o
}

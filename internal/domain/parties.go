package domain

// CustomerCode is the short alphanumeric code that identifies a
// customer (e.g. "ALFKI").
type CustomerCode string

type Customer struct {
	Code        CustomerCode
	CompanyName string
}

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Country   string
}

type Shipper struct {
	ID          int64
	CompanyName string
}

type Product struct {
	ID         int64
	Name       string
	CategoryID int64
	Category   string
	SupplierID int64
	Supplier   string
}

package customer

import "time"

// Customer is a CRM record kept by the admin team, usually created after a
// consultation converts.
type Customer struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	WeddingDate string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateCustomerInput struct {
	Name        string
	Phone       string
	Email       string
	WeddingDate string
	Notes       string
}

type ListCustomersInput struct {
	Search string
	Page   int
	Limit  int
}

type ListCustomersOutput struct {
	Customers []Customer
	Total     int
	Page      int
	Limit     int
}

type UpdateCustomerInput struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	WeddingDate string
	Notes       string
}

package domain

// SeedInvoice referencia o cliente pelo email, o id é resolvido na inserção
type SeedInvoice struct {
	CustomerEmail string
	Amount        int64
	Status        InvoiceStatus
	Date          string
}

// SeedUser carrega a senha em texto puro antes do hash
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

type SeedResult struct {
	Users     []User    `json:"users"`
	Customers int       `json:"customers"`
	Invoices  []Invoice `json:"invoices"`
	Revenue   []Revenue `json:"revenue"`
}

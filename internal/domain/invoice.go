// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

type Invoice struct {
	ID         int           `json:"id"`
	CustomerID int           `json:"customer_id"`
	Amount     int64         `json:"amount"` // Valor em centavos
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"` // Formato yyyy-mm-dd
}

type LatestInvoice struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// LatestInvoiceRaw é a linha retornada pelo banco antes da formatação do valor
type LatestInvoiceRaw struct {
	ID       int
	Name     string
	ImageURL string
	Email    string
	Amount   int64
}

type InvoicesTable struct {
	ID         int           `json:"id"`
	CustomerID int           `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       string        `json:"date"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

type InvoiceForm struct {
	ID         int           `json:"id"`
	CustomerID int           `json:"customer_id"`
	Amount     float64       `json:"amount"` // Valor em dólares
	Status     InvoiceStatus `json:"status"`
}

type InvoiceTotals struct {
	Paid    int64
	Pending int64
}

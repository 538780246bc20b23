package dashboard

import (
	"errors"
	"fmt"
)

// Erros genéricos devolvidos pela camada de dados
var (
	ErrFetchRevenue        = errors.New("failed to fetch revenue data")
	ErrFetchLatestInvoices = errors.New("failed to fetch the latest invoices")
	ErrFetchCardData       = errors.New("failed to fetch card data")
	ErrFetchInvoices       = errors.New("failed to fetch invoices")
	ErrFetchInvoicesPages  = errors.New("failed to fetch total number of invoices")
	ErrFetchInvoice        = errors.New("failed to fetch invoice")
	ErrFetchCustomers      = errors.New("failed to fetch all customers")
	ErrFetchCustomersTable = errors.New("failed to fetch customer table")
)

// DashboardError é um erro com contexto adicional para a API
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

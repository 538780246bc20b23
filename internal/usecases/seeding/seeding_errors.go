package seeding

import "errors"

var (
	ErrSeedUsers     = errors.New("erro ao popular usuários")
	ErrSeedCustomers = errors.New("erro ao popular clientes")
	ErrSeedInvoices  = errors.New("erro ao popular faturas")
	ErrSeedRevenue   = errors.New("erro ao popular receitas")
	ErrHashPassword  = errors.New("erro ao gerar hash da senha")
)

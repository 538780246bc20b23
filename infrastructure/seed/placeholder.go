// Package seed contém os dados de demonstração usados para popular o banco
package seed

import "github.com/vfg2006/dashboard-api/internal/domain"

var Users = []domain.SeedUser{
	{
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var Customers = []domain.Customer{
	{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// Valores em centavos
var Invoices = []domain.SeedInvoice{
	{CustomerEmail: "evil@rabbit.com", Amount: 15795, Status: domain.InvoiceStatusPending, Date: "2022-12-06"},
	{CustomerEmail: "delba@oliveira.com", Amount: 20348, Status: domain.InvoiceStatusPending, Date: "2022-11-14"},
	{CustomerEmail: "amy@burns.com", Amount: 3040, Status: domain.InvoiceStatusPaid, Date: "2022-10-29"},
	{CustomerEmail: "michael@novotny.com", Amount: 44800, Status: domain.InvoiceStatusPaid, Date: "2023-09-10"},
	{CustomerEmail: "balazs@orban.com", Amount: 34577, Status: domain.InvoiceStatusPending, Date: "2023-08-05"},
	{CustomerEmail: "lee@robinson.com", Amount: 54246, Status: domain.InvoiceStatusPending, Date: "2023-07-16"},
	{CustomerEmail: "evil@rabbit.com", Amount: 666, Status: domain.InvoiceStatusPending, Date: "2023-06-27"},
	{CustomerEmail: "michael@novotny.com", Amount: 32545, Status: domain.InvoiceStatusPaid, Date: "2023-06-09"},
	{CustomerEmail: "amy@burns.com", Amount: 1250, Status: domain.InvoiceStatusPaid, Date: "2023-06-17"},
	{CustomerEmail: "balazs@orban.com", Amount: 8546, Status: domain.InvoiceStatusPaid, Date: "2023-06-07"},
	{CustomerEmail: "delba@oliveira.com", Amount: 500, Status: domain.InvoiceStatusPaid, Date: "2023-08-19"},
	{CustomerEmail: "balazs@orban.com", Amount: 8945, Status: domain.InvoiceStatusPaid, Date: "2023-06-03"},
	{CustomerEmail: "lee@robinson.com", Amount: 1000, Status: domain.InvoiceStatusPaid, Date: "2022-06-05"},
}

var Revenue = []domain.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

package dashboard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"github.com/vfg2006/dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// LatestInvoicesLimit é a quantidade de faturas exibidas no card de últimas faturas
const LatestInvoicesLimit = 5

type Dashboard interface {
	FetchRevenue(ctx context.Context) ([]domain.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*domain.CardData, error)
	FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]domain.InvoicesTable, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id int) (*domain.InvoiceForm, error)
	FetchCustomers(ctx context.Context) ([]domain.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomersTable, error)
}

type Service struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	revenueRepo  repository.RevenueRepository
}

func NewService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
) Dashboard {
	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
	}
}

// databaseError registra a falha original e devolve apenas o erro genérico
func databaseError(err error, generic error) error {
	logrus.WithError(err).Error("Database Error")
	return NewDashboardError(generic, apiErrors.ErrDataFetch, "")
}

func (s *Service) FetchRevenue(ctx context.Context) ([]domain.Revenue, error) {
	revenue, err := s.revenueRepo.ListRevenue(ctx)
	if err != nil {
		return nil, databaseError(err, ErrFetchRevenue)
	}

	return revenue, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	rows, err := s.invoiceRepo.ListLatestInvoices(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, databaseError(err, ErrFetchLatestInvoices)
	}

	latestInvoices := make([]domain.LatestInvoice, 0, len(rows))
	for _, invoice := range rows {
		latestInvoices = append(latestInvoices, domain.LatestInvoice{
			ID:       invoice.ID,
			Name:     invoice.Name,
			ImageURL: invoice.ImageURL,
			Email:    invoice.Email,
			Amount:   utils.FormatCurrency(invoice.Amount),
		})
	}

	return latestInvoices, nil
}

// FetchCardData dispara as três consultas em paralelo e aguarda todas
func (s *Service) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	var (
		numberOfInvoices  int64
		numberOfCustomers int64
		totals            *domain.InvoiceTotals
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.invoiceRepo.CountInvoices(gctx)
		if err != nil {
			return errors.Wrap(err, "contagem de faturas")
		}
		numberOfInvoices = count
		return nil
	})

	g.Go(func() error {
		count, err := s.customerRepo.CountCustomers(gctx)
		if err != nil {
			return errors.Wrap(err, "contagem de clientes")
		}
		numberOfCustomers = count
		return nil
	})

	g.Go(func() error {
		sums, err := s.invoiceRepo.SumInvoiceAmountsByStatus(gctx)
		if err != nil {
			return errors.Wrap(err, "soma de faturas por status")
		}
		totals = sums
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, databaseError(err, ErrFetchCardData)
	}

	if totals == nil {
		totals = &domain.InvoiceTotals{}
	}

	return &domain.CardData{
		NumberOfCustomers:    numberOfCustomers,
		NumberOfInvoices:     numberOfInvoices,
		TotalPaidInvoices:    utils.FormatCurrency(totals.Paid),
		TotalPendingInvoices: utils.FormatCurrency(totals.Pending),
	}, nil
}

func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]domain.InvoicesTable, error) {
	offset := utils.PageOffset(currentPage)

	invoices, err := s.invoiceRepo.ListFilteredInvoices(ctx, utils.SearchPattern(query), utils.ItemsPerPage, offset)
	if err != nil {
		return nil, databaseError(err, ErrFetchInvoices)
	}

	return invoices, nil
}

func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.invoiceRepo.CountFilteredInvoices(ctx, utils.SearchPattern(query))
	if err != nil {
		return 0, databaseError(err, ErrFetchInvoicesPages)
	}

	return utils.TotalPages(count), nil
}

// FetchInvoiceByID devolve nil quando a fatura não existe
func (s *Service) FetchInvoiceByID(ctx context.Context, id int) (*domain.InvoiceForm, error) {
	invoice, err := s.invoiceRepo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, ErrFetchInvoice)
	}

	if invoice == nil {
		return nil, nil
	}

	return &domain.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     utils.CentsToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) FetchCustomers(ctx context.Context) ([]domain.CustomerField, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, databaseError(err, ErrFetchCustomers)
	}

	return customers, nil
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomersTable, error) {
	rows, err := s.customerRepo.ListFilteredCustomers(ctx, utils.SearchPattern(query))
	if err != nil {
		return nil, databaseError(err, ErrFetchCustomersTable)
	}

	customers := make([]domain.CustomersTable, 0, len(rows))
	for _, customer := range rows {
		customers = append(customers, domain.CustomersTable{
			ID:            customer.ID,
			Name:          customer.Name,
			Email:         customer.Email,
			ImageURL:      customer.ImageURL,
			TotalInvoices: customer.TotalInvoices,
			TotalPending:  utils.FormatCurrency(customer.TotalPending),
			TotalPaid:     utils.FormatCurrency(customer.TotalPaid),
		})
	}

	return customers, nil
}

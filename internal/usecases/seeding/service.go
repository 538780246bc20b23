package seeding

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-api/infrastructure/seed"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost é o custo do bcrypt usado nas senhas de demonstração
const PasswordCost = 10

type Step string

const (
	StepUsers     Step = "users"
	StepCustomers Step = "customers"
	StepInvoices  Step = "invoices"
	StepRevenue   Step = "revenue"
)

// AllSteps na ordem em que precisam rodar: faturas resolvem o cliente pelo email
var AllSteps = []Step{StepUsers, StepCustomers, StepInvoices, StepRevenue}

type Seeder interface {
	Seed(ctx context.Context) (*domain.SeedResult, error)
	SeedSteps(ctx context.Context, steps ...Step) (*domain.SeedResult, error)
	SeedUsers(ctx context.Context) ([]domain.User, error)
	SeedCustomers(ctx context.Context) (int, error)
	SeedInvoices(ctx context.Context) ([]domain.Invoice, error)
	SeedRevenue(ctx context.Context) ([]domain.Revenue, error)
}

// Data agrupa os registros que serão inseridos
type Data struct {
	Users     []domain.SeedUser
	Customers []domain.Customer
	Invoices  []domain.SeedInvoice
	Revenue   []domain.Revenue
}

type Service struct {
	seedRepo repository.SeedRepository
	data     Data
	hash     func(password string) (string, error)
}

func NewService(seedRepo repository.SeedRepository, data Data) Seeder {
	return &Service{
		seedRepo: seedRepo,
		data:     data,
		hash:     hashPassword,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Seed roda todas as etapas. Cada etapa é atômica, mas uma falha não desfaz as anteriores.
func (s *Service) Seed(ctx context.Context) (*domain.SeedResult, error) {
	return s.SeedSteps(ctx, AllSteps...)
}

func (s *Service) SeedSteps(ctx context.Context, steps ...Step) (*domain.SeedResult, error) {
	startTime := time.Now()
	result := &domain.SeedResult{}

	for _, step := range steps {
		var err error

		switch step {
		case StepUsers:
			result.Users, err = s.SeedUsers(ctx)
		case StepCustomers:
			result.Customers, err = s.SeedCustomers(ctx)
		case StepInvoices:
			result.Invoices, err = s.SeedInvoices(ctx)
		case StepRevenue:
			result.Revenue, err = s.SeedRevenue(ctx)
		default:
			err = fmt.Errorf("etapa de seed desconhecida: %s", step)
		}

		if err != nil {
			logrus.WithError(err).WithField("step", step).Error("Erro ao popular o banco")
			return result, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"steps":    len(steps),
		"duration": time.Since(startTime).String(),
	}).Info("Banco populado com sucesso")

	return result, nil
}

func (s *Service) SeedUsers(ctx context.Context) ([]domain.User, error) {
	// Hash fora da transação, o bcrypt é lento
	hashed := make([]domain.User, 0, len(s.data.Users))
	for _, user := range s.data.Users {
		password, err := s.hash(user.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHashPassword, err)
		}
		hashed = append(hashed, domain.User{
			Name:         user.Name,
			Email:        user.Email,
			PasswordHash: password,
		})
	}

	users := make([]domain.User, 0, len(hashed))
	err := s.seedRepo.RunInTransaction(ctx, func(q database.Queryer) error {
		if err := s.seedRepo.CreateUsersTable(ctx, q); err != nil {
			return err
		}
		if err := s.seedRepo.DeleteUsers(ctx, q); err != nil {
			return err
		}
		for _, user := range hashed {
			inserted, err := s.seedRepo.InsertUser(ctx, q, user)
			if err != nil {
				return err
			}
			users = append(users, *inserted)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedUsers, err)
	}

	logrus.WithField("users", len(users)).Info("Usuários inseridos")
	return users, nil
}

func (s *Service) SeedCustomers(ctx context.Context) (int, error) {
	inserted := 0
	err := s.seedRepo.RunInTransaction(ctx, func(q database.Queryer) error {
		inserted = 0
		if err := s.seedRepo.CreateCustomersTable(ctx, q); err != nil {
			return err
		}
		if err := s.seedRepo.DeleteCustomers(ctx, q); err != nil {
			return err
		}
		for _, customer := range s.data.Customers {
			if _, err := s.seedRepo.InsertCustomer(ctx, q, customer); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeedCustomers, err)
	}

	logrus.WithField("customers", inserted).Info("Clientes inseridos")
	return inserted, nil
}

func (s *Service) SeedInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices := make([]domain.Invoice, 0, len(s.data.Invoices))
	err := s.seedRepo.RunInTransaction(ctx, func(q database.Queryer) error {
		if err := s.seedRepo.CreateInvoicesTable(ctx, q); err != nil {
			return err
		}
		if err := s.seedRepo.DeleteInvoices(ctx, q); err != nil {
			return err
		}
		for _, invoice := range s.data.Invoices {
			inserted, err := s.seedRepo.InsertInvoice(ctx, q, invoice)
			if err != nil {
				return err
			}
			invoices = append(invoices, *inserted)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedInvoices, err)
	}

	logrus.WithField("invoices", len(invoices)).Info("Faturas inseridas")
	return invoices, nil
}

func (s *Service) SeedRevenue(ctx context.Context) ([]domain.Revenue, error) {
	revenue := make([]domain.Revenue, 0, len(s.data.Revenue))
	err := s.seedRepo.RunInTransaction(ctx, func(q database.Queryer) error {
		if err := s.seedRepo.CreateRevenueTable(ctx, q); err != nil {
			return err
		}
		if err := s.seedRepo.DeleteRevenue(ctx, q); err != nil {
			return err
		}
		for _, rev := range s.data.Revenue {
			inserted, err := s.seedRepo.InsertRevenue(ctx, q, rev)
			if err != nil {
				return err
			}
			revenue = append(revenue, *inserted)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedRevenue, err)
	}

	logrus.WithField("months", len(revenue)).Info("Receitas inseridas")
	return revenue, nil
}

// PlaceholderData devolve os dados de demonstração padrão
func PlaceholderData() Data {
	return Data{
		Users:     seed.Users,
		Customers: seed.Customers,
		Invoices:  seed.Invoices,
		Revenue:   seed.Revenue,
	}
}

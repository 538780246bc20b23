package seeding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testData = Data{
	Users: []domain.SeedUser{
		{Name: "User", Email: "user@nextmail.com", Password: "123456"},
	},
	Customers: []domain.Customer{
		{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	},
	Invoices: []domain.SeedInvoice{
		{CustomerEmail: "evil@rabbit.com", Amount: 15795, Status: domain.InvoiceStatusPending, Date: "2022-12-06"},
	},
	Revenue: []domain.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
	},
}

// runInline executa a função da transação diretamente
func runInline(_ context.Context, fn func(database.Queryer) error) error {
	return fn(nil)
}

func newTestService(t *testing.T) (*Service, *mocks.MockSeedRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSeedRepository(ctrl)
	return NewService(repo, testData).(*Service), repo
}

func TestService_SeedUsers(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	createTable := repo.EXPECT().CreateUsersTable(gomock.Any(), gomock.Any()).Return(nil)
	deleteRows := repo.EXPECT().DeleteUsers(gomock.Any(), gomock.Any()).Return(nil).After(createTable)
	repo.EXPECT().
		InsertUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ database.Queryer, user domain.User) (*domain.User, error) {
			user.ID = 1
			return &user, nil
		}).
		After(deleteRows)

	users, err := service.SeedUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "user@nextmail.com", users[0].Email)
	assert.NotEqual(t, "123456", users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("123456")))

	cost, err := bcrypt.Cost([]byte(users[0].PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)
}

func TestService_SeedUsers_HashError(t *testing.T) {
	service, _ := newTestService(t)
	service.hash = func(string) (string, error) { return "", errors.New("boom") }

	_, err := service.SeedUsers(context.Background())

	assert.ErrorIs(t, err, ErrHashPassword)
}

func TestService_SeedCustomers(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().CreateCustomersTable(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteCustomers(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().InsertCustomer(gomock.Any(), gomock.Any(), testData.Customers[0]).Return(&domain.Customer{ID: 1}, nil)
	repo.EXPECT().InsertCustomer(gomock.Any(), gomock.Any(), testData.Customers[1]).Return(&domain.Customer{ID: 2}, nil)

	count, err := service.SeedCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_SeedInvoices_InsertError(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().CreateInvoicesTable(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteInvoices(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().InsertInvoice(gomock.Any(), gomock.Any(), testData.Invoices[0]).
		Return(nil, errors.New("NOT NULL constraint failed: invoices.customer_id"))

	invoices, err := service.SeedInvoices(context.Background())

	assert.Nil(t, invoices)
	assert.ErrorIs(t, err, ErrSeedInvoices)
	assert.Contains(t, err.Error(), "customer_id")
}

func TestService_SeedRevenue(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().CreateRevenueTable(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteRevenue(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().InsertRevenue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ database.Queryer, rev domain.Revenue) (*domain.Revenue, error) {
			return &rev, nil
		}).
		Times(2)

	revenue, err := service.SeedRevenue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testData.Revenue, revenue)
}

func TestService_Seed_StopsOnFailedStep(t *testing.T) {
	service, repo := newTestService(t)
	service.hash = func(p string) (string, error) { return "hashed-" + p, nil }

	// usuários ok
	repo.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline).Times(2)
	repo.EXPECT().CreateUsersTable(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteUsers(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().InsertUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, nil)

	// clientes falham ao criar a tabela, faturas e receitas não rodam
	repo.EXPECT().CreateCustomersTable(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))

	result, err := service.Seed(context.Background())

	assert.ErrorIs(t, err, ErrSeedCustomers)
	require.NotNil(t, result)
	assert.Len(t, result.Users, 1)
	assert.Empty(t, result.Invoices)
}

func TestService_SeedSteps_UnknownStep(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SeedSteps(context.Background(), Step("orders"))

	assert.Error(t, err)
}

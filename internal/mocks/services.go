package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"yippee/internal/domain"
)

type AccountServiceInterface struct {
	mock.Mock
}

func (m *AccountServiceInterface) Register(email, password, name string) error {
	args := m.Called(email, password, name)
	return args.Error(0)
}

func (m *AccountServiceInterface) Authenticate(email, password string) (bool, error) {
	args := m.Called(email, password)
	return args.Bool(0), args.Error(1)
}

func (m *AccountServiceInterface) Exists(email string) (bool, string, error) {
	args := m.Called(email)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *AccountServiceInterface) ChangePassword(email, oldPassword, newPassword string) error {
	args := m.Called(email, oldPassword, newPassword)
	return args.Error(0)
}

func (m *AccountServiceInterface) Get(email string) (*domain.Account, error) {
	args := m.Called(email)
	if acc := args.Get(0); acc != nil {
		return acc.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

type PaymentServiceInterface struct {
	mock.Mock
}

func (m *PaymentServiceInterface) Save(email, cardNumber, cvv, expiry string) error {
	args := m.Called(email, cardNumber, cvv, expiry)
	return args.Error(0)
}

func (m *PaymentServiceInterface) Lookup(email string) (*domain.PaymentInstrument, error) {
	args := m.Called(email)
	if ins := args.Get(0); ins != nil {
		return ins.(*domain.PaymentInstrument), args.Error(1)
	}
	return nil, args.Error(1)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func (m *CatalogServiceInterface) List(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	if restaurants := args.Get(0); restaurants != nil {
		return restaurants.([]domain.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func (m *OrderServiceInterface) Place(ctx context.Context, order *domain.Order) (int, error) {
	args := m.Called(ctx, order)
	return args.Int(0), args.Error(1)
}

func (m *OrderServiceInterface) List(email string) ([]domain.OrderView, error) {
	args := m.Called(email)
	if views := args.Get(0); views != nil {
		return views.([]domain.OrderView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderServiceInterface) ReceiptQR(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if qr := args.Get(0); qr != nil {
		return qr.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

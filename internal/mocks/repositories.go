// Package mocks provides testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"yippee/internal/domain"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) CreateAccount(acc *domain.Account) error {
	args := m.Called(acc)
	return args.Error(0)
}

func (m *AccountRepository) GetAccount(email string) (*domain.Account, error) {
	args := m.Called(email)
	if acc := args.Get(0); acc != nil {
		return acc.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) UpdatePassword(email, secret string) error {
	args := m.Called(email, secret)
	return args.Error(0)
}

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) UpsertPayment(ins *domain.PaymentInstrument) error {
	args := m.Called(ins)
	return args.Error(0)
}

func (m *PaymentRepository) GetPayment(email string) (*domain.PaymentInstrument, error) {
	args := m.Called(email)
	if ins := args.Get(0); ins != nil {
		return ins.(*domain.PaymentInstrument), args.Error(1)
	}
	return nil, args.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	args := m.Called()
	if restaurants := args.Get(0); restaurants != nil {
		return restaurants.([]domain.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) ListOrders(email string) ([]domain.Order, error) {
	args := m.Called(email)
	if orders := args.Get(0); orders != nil {
		return orders.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	args := m.Called(orderID, qr)
	return args.Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if qr := args.Get(0); qr != nil {
		return qr.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

type CatalogCache struct {
	mock.Mock
}

func (m *CatalogCache) GetCatalog(ctx context.Context) ([]domain.Restaurant, bool) {
	args := m.Called(ctx)
	if restaurants := args.Get(0); restaurants != nil {
		return restaurants.([]domain.Restaurant), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *CatalogCache) SetCatalog(ctx context.Context, restaurants []domain.Restaurant) error {
	args := m.Called(ctx, restaurants)
	return args.Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if qr := args.Get(0); qr != nil {
		return qr.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

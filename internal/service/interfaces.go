package service

import (
	"context"

	"yippee/internal/domain"
)

type AccountRepository interface {
	CreateAccount(acc *domain.Account) error
	GetAccount(email string) (*domain.Account, error)
	UpdatePassword(email, secret string) error
}

type PaymentRepository interface {
	UpsertPayment(ins *domain.PaymentInstrument) error
	GetPayment(email string) (*domain.PaymentInstrument, error)
}

type RestaurantRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListOrders(email string) ([]domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]domain.Restaurant, bool)
	SetCatalog(ctx context.Context, restaurants []domain.Restaurant) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type AccountServiceInterface interface {
	Register(email, password, name string) error
	Authenticate(email, password string) (bool, error)
	Exists(email string) (bool, string, error)
	ChangePassword(email, oldPassword, newPassword string) error
	Get(email string) (*domain.Account, error)
}

type PaymentServiceInterface interface {
	Save(email, cardNumber, cvv, expiry string) error
	Lookup(email string) (*domain.PaymentInstrument, error)
}

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, order *domain.Order) (int, error)
	List(email string) ([]domain.OrderView, error)
	ReceiptQR(orderID int) ([]byte, error)
}

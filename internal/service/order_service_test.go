package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yippee/internal/domain"
	"yippee/internal/mocks"
)

func TestOrderService_PlaceValidation(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := NewOrderService(mockRepo, nil, nil)

	future := time.Now().Add(30 * time.Minute)

	tests := []struct {
		name  string
		order *domain.Order
	}{
		{
			name:  "no items",
			order: &domain.Order{Email: "a@x.com", Restaurant: "P60", ScheduledAt: future, TotalPrice: 0},
		},
		{
			name: "zero quantity",
			order: &domain.Order{
				Email: "a@x.com", Restaurant: "P60", ScheduledAt: future, TotalPrice: 400,
				Items: []domain.OrderItem{{Dish: "Italian Pizza", Quantity: 0, Price: 400}},
			},
		},
		{
			name: "total mismatch",
			order: &domain.Order{
				Email: "a@x.com", Restaurant: "P60", ScheduledAt: future, TotalPrice: 999,
				Items: []domain.OrderItem{{Dish: "Italian Pizza", Quantity: 1, Price: 400}},
			},
		},
		{
			name: "missing email",
			order: &domain.Order{
				Restaurant: "P60", ScheduledAt: future, TotalPrice: 400,
				Items: []domain.OrderItem{{Dish: "Italian Pizza", Quantity: 1, Price: 400}},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := svc.Place(context.Background(), testCase.order)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	mockRepo.AssertNotCalled(t, "CreateOrder")
}

func TestOrderService_Place(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockPublisher := new(mocks.OrderPublisher)
	mockQR := new(mocks.QRGenerator)
	svc := NewOrderService(mockRepo, mockPublisher, mockQR)

	order := &domain.Order{
		Email:       "a@x.com",
		Restaurant:  "Grana Pizzeria",
		ScheduledAt: time.Now().Add(30 * time.Minute),
		TotalPrice:  700.00,
		Items:       []domain.OrderItem{{Dish: "Margherita Pizza", Quantity: 2, Price: 700.00}},
	}

	mockRepo.On("CreateOrder", order).
		Run(func(args mock.Arguments) { args.Get(0).(*domain.Order).ID = 7 }).
		Return(nil).Once()
	mockQR.On("Generate", 7).Return([]byte("qr-bytes"), nil).Once()
	mockRepo.On("SaveQRCode", 7, []byte("qr-bytes")).Return(nil).Once()
	mockPublisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == "order_placed" && event.OrderID == 7 &&
			event.Restaurant == "Grana Pizzeria" && event.ItemCount == 1
	})).Return(nil).Once()

	orderID, err := svc.Place(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, 7, orderID)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
	mockQR.AssertExpectations(t)
}

func TestOrderService_PlacePublishFailureDoesNotFailOrder(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockPublisher := new(mocks.OrderPublisher)
	svc := NewOrderService(mockRepo, mockPublisher, nil)

	order := &domain.Order{
		Email: "a@x.com", Restaurant: "P60", ScheduledAt: time.Now().Add(time.Hour), TotalPrice: 400,
		Items: []domain.OrderItem{{Dish: "Italian Pizza", Quantity: 1, Price: 400}},
	}

	mockRepo.On("CreateOrder", order).
		Run(func(args mock.Arguments) { args.Get(0).(*domain.Order).ID = 3 }).
		Return(nil).Once()
	mockPublisher.On("PublishOrder", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	orderID, err := svc.Place(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, 3, orderID)
}

func TestOrderService_PlaceRepoError(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := NewOrderService(mockRepo, nil, nil)

	order := &domain.Order{
		Email: "a@x.com", Restaurant: "P60", ScheduledAt: time.Now(), TotalPrice: 400,
		Items: []domain.OrderItem{{Dish: "Italian Pizza", Quantity: 1, Price: 400}},
	}
	mockRepo.On("CreateOrder", order).Return(assert.AnError).Once()

	_, err := svc.Place(context.Background(), order)
	assert.Error(t, err)
}

func TestOrderService_ListDerivesStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockRepo := new(mocks.OrderRepository)
	svc := NewOrderService(mockRepo, nil, nil)
	svc.now = func() time.Time { return now }

	mockRepo.On("ListOrders", "a@x.com").Return([]domain.Order{
		{ID: 2, Email: "a@x.com", Restaurant: "Grana Pizzeria", ScheduledAt: now.Add(30 * time.Minute), TotalPrice: 700,
			Items: []domain.OrderItem{{Dish: "Margherita Pizza", Quantity: 2, Price: 700}}},
		{ID: 1, Email: "a@x.com", Restaurant: "P60", ScheduledAt: now.Add(-time.Hour), TotalPrice: 400,
			Items: []domain.OrderItem{{Dish: "Italian Pizza", Quantity: 1, Price: 400}}},
	}, nil).Once()

	views, err := svc.List("a@x.com")
	assert.NoError(t, err)
	assert.Len(t, views, 2)

	// Newest first, as returned by the repository.
	assert.Equal(t, 2, views[0].ID)
	assert.Equal(t, "Delivering in 30 minutes", views[0].Status)
	assert.Equal(t, 1, views[1].ID)
	assert.Equal(t, "Delivered", views[1].Status)
}

func TestOrderService_ListEmpty(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := NewOrderService(mockRepo, nil, nil)

	mockRepo.On("ListOrders", "a@x.com").Return([]domain.Order{}, nil).Once()

	views, err := svc.List("a@x.com")
	assert.NoError(t, err)
	assert.Empty(t, views)
}

func TestOrderService_ReceiptQRRegenerates(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockQR := new(mocks.QRGenerator)
	svc := NewOrderService(mockRepo, nil, mockQR)

	mockRepo.On("GetQRCode", 7).Return([]byte{}, nil).Once()
	mockQR.On("Generate", 7).Return([]byte("fresh"), nil).Once()
	mockRepo.On("SaveQRCode", 7, []byte("fresh")).Return(nil).Once()

	qr, err := svc.ReceiptQR(7)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), qr)
}

func TestDeliveryStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Delivered", deliveryStatus(now, now.Add(-time.Minute)))
	assert.Contains(t, deliveryStatus(now, now.Add(45*time.Minute)), "Delivering in")
}

package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"yippee/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr, now: time.Now}
}

// Place persists the order header and all line items atomically and returns
// the store-assigned id. QR receipt storage and event publishing happen after
// the commit and never fail the order.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) (int, error) {
	if order.Email == "" || order.Restaurant == "" {
		return 0, fmt.Errorf("%w: email and restaurant are required", domain.ErrValidation)
	}
	if len(order.Items) == 0 {
		return 0, fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}
	var sum float64
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity for %q must be positive", domain.ErrValidation, item.Dish)
		}
		sum += item.Price
	}
	if math.Abs(sum-order.TotalPrice) > 0.005 {
		return 0, fmt.Errorf("%w: total %.2f does not match item sum %.2f", domain.ErrValidation, order.TotalPrice, sum)
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			if err := s.repo.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("[orders] failed to store receipt QR for order %d: %v", order.ID, err)
			}
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:       "order_placed",
			OrderID:    order.ID,
			Restaurant: order.Restaurant,
			TotalPrice: order.TotalPrice,
			ItemCount:  len(order.Items),
			Timestamp:  time.Now(),
		}); err != nil {
			log.Printf("[orders] failed to publish order %d: %v", order.ID, err)
		}
	}

	return order.ID, nil
}

// List returns the user's orders newest first. The delivery status is derived
// at read time, every call. An empty result means the user simply has no
// orders yet.
func (s *OrderService) List(email string) ([]domain.OrderView, error) {
	orders, err := s.repo.ListOrders(email)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, domain.OrderView{
			Order:  order,
			Status: deliveryStatus(now, order.ScheduledAt),
		})
	}
	return views, nil
}

func deliveryStatus(now, scheduledAt time.Time) string {
	if scheduledAt.Before(now) {
		return "Delivered"
	}
	relative := strings.TrimSpace(humanize.RelTime(scheduledAt, now, "ago", ""))
	return "Delivering in " + relative
}

func (s *OrderService) ReceiptQR(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			if err := s.repo.SaveQRCode(orderID, regenerated); err != nil {
				log.Printf("[orders] failed to cache regenerated QR: %v", err)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)

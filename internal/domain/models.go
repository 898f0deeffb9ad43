package domain

import "time"

type Account struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// Secret is the encrypted password token, opaque to everything but the codec.
	Secret string `json:"-"`
}

type Restaurant struct {
	Name    string             `json:"name"`
	Menu    map[string]float64 `json:"menu"`
	Details map[string]string  `json:"details"`
}

type PaymentInstrument struct {
	Email      string `json:"email"`
	CardNumber string `json:"card_number"`
	CVV        string `json:"-"`
	Expiry     string `json:"expiry"`
	// CardType is derived from the card number's leading digit at save time
	// and never re-derived on read.
	CardType string `json:"card_type"`
}

type OrderItem struct {
	Dish     string  `json:"dish"`
	Quantity int     `json:"quantity"`
	// Price is the line subtotal (quantity x unit price), frozen at order time.
	Price float64 `json:"price"`
}

type Order struct {
	ID          int         `json:"id"`
	Email       string      `json:"email"`
	Restaurant  string      `json:"restaurant"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	TotalPrice  float64     `json:"total_price"`
	Items       []OrderItem `json:"items"`
}

// OrderView is an Order plus the delivery status derived at read time.
type OrderView struct {
	Order
	Status string `json:"status"`
}

type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	Restaurant string    `json:"restaurant"`
	TotalPrice float64   `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	Timestamp  time.Time `json:"timestamp"`
}

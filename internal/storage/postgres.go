package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"yippee/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresRepository) CreateAccount(acc *domain.Account) error {
	_, err := r.DB.Exec(
		"INSERT INTO accounts (email, password, name) VALUES ($1, $2, $3)",
		acc.Email, acc.Secret, acc.Name,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("account %q: %w", acc.Email, domain.ErrDuplicateAccount)
	}
	return err
}

func (r *PostgresRepository) GetAccount(email string) (*domain.Account, error) {
	var acc domain.Account
	err := r.DB.QueryRow(
		"SELECT email, password, COALESCE(name, '') FROM accounts WHERE email = $1",
		email,
	).Scan(&acc.Email, &acc.Secret, &acc.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %q: %w", email, domain.ErrAccountNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *PostgresRepository) UpdatePassword(email, secret string) error {
	result, err := r.DB.Exec("UPDATE accounts SET password = $1 WHERE email = $2", secret, email)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("account %q: %w", email, domain.ErrAccountNotFound)
	}
	return nil
}

// UpsertPayment enforces the one-instrument-per-account rule: last write wins.
func (r *PostgresRepository) UpsertPayment(ins *domain.PaymentInstrument) error {
	_, err := r.DB.Exec(`
		INSERT INTO payments (email, card, cvv, expiry, card_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET card = EXCLUDED.card, cvv = EXCLUDED.cvv,
		    expiry = EXCLUDED.expiry, card_type = EXCLUDED.card_type`,
		ins.Email, ins.CardNumber, ins.CVV, ins.Expiry, ins.CardType)
	return err
}

// GetPayment returns the stored instrument with fields still encrypted.
func (r *PostgresRepository) GetPayment(email string) (*domain.PaymentInstrument, error) {
	var ins domain.PaymentInstrument
	err := r.DB.QueryRow(
		"SELECT email, card, cvv, expiry, card_type FROM payments WHERE email = $1",
		email,
	).Scan(&ins.Email, &ins.CardNumber, &ins.CVV, &ins.Expiry, &ins.CardType)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment for %q: %w", email, domain.ErrNoPayment)
	}
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query("SELECT name, menu, details FROM restaurants ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var (
			rest        domain.Restaurant
			menuJSON    string
			detailsJSON string
		)
		if err := rows.Scan(&rest.Name, &menuJSON, &detailsJSON); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(menuJSON), &rest.Menu); err != nil {
			return nil, fmt.Errorf("restaurant %q: parse menu: %w", rest.Name, err)
		}
		if err := json.Unmarshal([]byte(detailsJSON), &rest.Details); err != nil {
			return nil, fmt.Errorf("restaurant %q: parse details: %w", rest.Name, err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

// CreateOrder inserts the order header and every line item in one transaction.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (email, restaurant, scheduled_at, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, order.Email, order.Restaurant, order.ScheduledAt.Unix(), order.TotalPrice).Scan(&order.ID); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, dish, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, order.ID, item.Dish, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListOrders returns a user's orders newest first, items included.
func (r *PostgresRepository) ListOrders(email string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, email, restaurant, scheduled_at, total_price
		FROM orders
		WHERE email = $1
		ORDER BY id DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			order     domain.Order
			scheduled int64
		)
		if err := rows.Scan(&order.ID, &order.Email, &order.Restaurant, &scheduled, &order.TotalPrice); err != nil {
			continue
		}
		order.ScheduledAt = time.Unix(scheduled, 0)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(
		"SELECT dish, quantity, price FROM order_items WHERE order_id = $1 ORDER BY id",
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.Dish, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			email TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			name TEXT PRIMARY KEY,
			menu TEXT NOT NULL,
			details TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE REFERENCES accounts(email) ON DELETE CASCADE,
			card TEXT NOT NULL,
			cvv TEXT NOT NULL,
			expiry TEXT NOT NULL,
			card_type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			email TEXT REFERENCES accounts(email) ON DELETE CASCADE,
			restaurant TEXT NOT NULL,
			scheduled_at BIGINT NOT NULL,
			total_price NUMERIC(10,2) NOT NULL,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT REFERENCES orders(id) ON DELETE CASCADE,
			dish TEXT NOT NULL,
			quantity INT NOT NULL,
			price NUMERIC(10,2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

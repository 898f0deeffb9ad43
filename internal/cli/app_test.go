package cli

import (
	"bufio"
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yippee/internal/domain"
	"yippee/internal/mocks"
)

type appMocks struct {
	accounts *mocks.AccountServiceInterface
	payments *mocks.PaymentServiceInterface
	catalog  *mocks.CatalogServiceInterface
	orders   *mocks.OrderServiceInterface
}

func newTestApp(t *testing.T, input string, passwords ...string) (*App, *bytes.Buffer, *appMocks) {
	t.Helper()
	m := &appMocks{
		accounts: new(mocks.AccountServiceInterface),
		payments: new(mocks.PaymentServiceInterface),
		catalog:  new(mocks.CatalogServiceInterface),
		orders:   new(mocks.OrderServiceInterface),
	}

	out := &bytes.Buffer{}
	queue := passwords
	app := &App{
		Accounts: m.accounts,
		Payments: m.payments,
		Catalog:  m.catalog,
		Orders:   m.orders,
		in:       bufio.NewReader(strings.NewReader(input)),
		out:      out,
		readPassword: func(string) (string, error) {
			if len(queue) == 0 {
				return "", nil
			}
			pw := queue[0]
			queue = queue[1:]
			return pw, nil
		},
		rng: rand.New(rand.NewSource(1)),
	}
	return app, out, m
}

func TestLoginScreen_ExistingUser(t *testing.T) {
	app, out, m := newTestApp(t, "a@x.com\n", "pw1")

	m.accounts.On("Exists", "a@x.com").Return(true, "Alice", nil).Once()
	m.accounts.On("Authenticate", "a@x.com", "pw1").Return(true, nil).Once()

	err := app.loginScreen()
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", app.email)
	assert.Equal(t, "Alice", app.name)
	assert.Contains(t, out.String(), "Welcome back Alice!")
	assert.Contains(t, out.String(), "Login successful!")
}

func TestLoginScreen_NewUserRegisters(t *testing.T) {
	app, out, m := newTestApp(t, "new@x.com\nBob\n", "pw2")

	m.accounts.On("Exists", "new@x.com").Return(false, "", nil).Once()
	m.accounts.On("Register", "new@x.com", "pw2", "Bob").Return(nil).Once()

	err := app.loginScreen()
	assert.NoError(t, err)
	assert.Equal(t, "new@x.com", app.email)
	assert.Contains(t, out.String(), "New user detected!")
	assert.Contains(t, out.String(), "Registration and auto-login successful!")
}

func TestViewOrders_RendersHistory(t *testing.T) {
	app, out, m := newTestApp(t, "")
	app.email = "a@x.com"

	m.orders.On("List", "a@x.com").Return([]domain.OrderView{
		{
			Order: domain.Order{
				ID: 7, Restaurant: "Grana Pizzeria", TotalPrice: 700.00,
				ScheduledAt: time.Now().Add(25 * time.Minute),
				Items:       []domain.OrderItem{{Dish: "Margherita Pizza", Quantity: 2, Price: 700.00}},
			},
			Status: "Delivering in 25 minutes",
		},
	}, nil).Once()

	app.viewOrders()

	rendered := out.String()
	assert.Contains(t, rendered, "Order #7")
	assert.Contains(t, rendered, "Grana Pizzeria")
	assert.Contains(t, rendered, "Status: Delivering in 25 minutes")
	assert.Contains(t, rendered, "Margherita Pizza x2 = 700.00 INR")
}

func TestViewOrders_Empty(t *testing.T) {
	app, out, m := newTestApp(t, "")
	app.email = "a@x.com"

	m.orders.On("List", "a@x.com").Return([]domain.OrderView{}, nil).Once()

	app.viewOrders()
	assert.Contains(t, out.String(), "No orders yet.")
}

func TestPlaceOrderFlow_UnknownRestaurant(t *testing.T) {
	app, out, m := newTestApp(t, "Nowhere Diner\n")
	app.email = "a@x.com"

	m.catalog.On("List", mock.Anything).Return([]domain.Restaurant{
		{Name: "Grana Pizzeria", Menu: map[string]float64{"Tiramisu": 220}, Details: map[string]string{}},
	}, nil).Once()

	err := app.placeOrderFlow(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Restaurant not found!")
	m.orders.AssertNotCalled(t, "Place")
}

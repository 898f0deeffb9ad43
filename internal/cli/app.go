// Package cli implements the interactive terminal frontend. It only consumes
// the service operations; all persistence and crypto live behind them.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"yippee/internal/domain"
	"yippee/internal/secrets"
	"yippee/internal/service"
)

const projectName = "Yippee"

type App struct {
	Accounts service.AccountServiceInterface
	Payments service.PaymentServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface

	in           *bufio.Reader
	out          io.Writer
	readPassword func(prompt string) (string, error)
	rng          *rand.Rand

	inputClosed bool
	email       string
	name        string
}

func NewApp(
	accounts service.AccountServiceInterface,
	payments service.PaymentServiceInterface,
	catalog service.CatalogServiceInterface,
	orders service.OrderServiceInterface,
) *App {
	return &App{
		Accounts:     accounts,
		Payments:     payments,
		Catalog:      catalog,
		Orders:       orders,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		readPassword: terminalPassword,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func terminalPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (a *App) Run() error {
	if err := a.loginScreen(); err != nil {
		return err
	}
	return a.mainMenu()
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		a.inputClosed = true
	}
	return strings.TrimSpace(line)
}

func (a *App) password(label string) string {
	pw, err := a.readPassword(label)
	if err != nil {
		return ""
	}
	return pw
}

func (a *App) loginScreen() error {
	a.title("Welcome to %s!", projectName)
	fmt.Fprintln(a.out, "Delicious food from Kochi's best restaurants.")
	fmt.Fprintln(a.out)

	for {
		email := a.prompt("Enter your email address: ")
		if email == "" {
			if a.inputClosed {
				return errors.New("input closed")
			}
			a.warn("An email address is required.")
			continue
		}

		exists, name, err := a.Accounts.Exists(email)
		if err != nil {
			return fmt.Errorf("look up account: %w", err)
		}

		if exists {
			if a.loginExisting(email, name) {
				return nil
			}
			continue
		}

		if err := a.registerNew(email); err != nil {
			return err
		}
		return nil
	}
}

func (a *App) loginExisting(email, name string) bool {
	fmt.Fprintf(a.out, "Welcome back %s!\n", name)
	for {
		password := a.password("Enter your password: ")
		ok, err := a.Accounts.Authenticate(email, password)
		if errors.Is(err, secrets.ErrDecryption) {
			a.warn("Your stored credentials are unreadable. Please contact support.")
			return false
		}
		if err != nil {
			a.warn("Login failed: %v", err)
			return false
		}
		if ok {
			a.ok("Login successful!")
			a.email, a.name = email, name
			return true
		}
		if a.inputClosed {
			return false
		}
		a.warn("Incorrect password, please try again.")
	}
}

func (a *App) registerNew(email string) error {
	a.note("New user detected!")
	name := a.prompt("Enter your name: ")
	password := a.password("Enter a secure password: ")

	if err := a.Accounts.Register(email, password, name); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			a.warn("That email is already registered.")
			return nil
		}
		return fmt.Errorf("register: %w", err)
	}
	a.ok("Registration and auto-login successful!")
	a.email, a.name = email, name
	return nil
}

func (a *App) mainMenu() error {
	for {
		fmt.Fprintln(a.out)
		a.title("Welcome to %s, %s!", projectName, a.name)
		fmt.Fprintln(a.out, "1. Place an Order")
		fmt.Fprintln(a.out, "2. View Previous Orders")
		fmt.Fprintln(a.out, "3. Account Settings")
		fmt.Fprintln(a.out, "4. Logout")
		fmt.Fprintln(a.out, "5. Exit")

		switch a.prompt("\nEnter your choice: ") {
		case "1":
			if err := a.placeOrderFlow(context.Background()); err != nil {
				a.warn("Could not place order: %v", err)
			}
		case "2":
			a.viewOrders()
		case "3":
			a.accountSettings()
		case "4":
			a.note("Logging out...")
			if err := a.loginScreen(); err != nil {
				return err
			}
		case "5":
			a.ok("Thank you for using %s!", projectName)
			return nil
		default:
			if a.inputClosed {
				return nil
			}
			a.warn("Invalid choice. Try again.")
		}
	}
}

func (a *App) viewOrders() {
	orders, err := a.Orders.List(a.email)
	if err != nil {
		a.warn("Could not load orders: %v", err)
		return
	}
	if len(orders) == 0 {
		a.warn("No orders yet.")
		return
	}

	for _, order := range orders {
		var b strings.Builder
		fmt.Fprintf(&b, "Restaurant: %s\n", order.Restaurant)
		fmt.Fprintf(&b, "Total: %.2f INR\n", order.TotalPrice)
		fmt.Fprintf(&b, "Status: %s\n", order.Status)
		b.WriteString("Items:")
		for _, item := range order.Items {
			fmt.Fprintf(&b, "\n  - %s x%d = %.2f INR", item.Dish, item.Quantity, item.Price)
		}
		a.panel(fmt.Sprintf("Order #%d", order.ID), b.String())
	}
}

func (a *App) accountSettings() {
	acc, err := a.Accounts.Get(a.email)
	if err != nil {
		a.warn("Could not load account: %v", err)
		return
	}

	cardInfo := "None"
	ins, err := a.Payments.Lookup(a.email)
	switch {
	case err == nil:
		cardInfo = fmt.Sprintf("%s ending %s", ins.CardType, lastFour(ins.CardNumber))
	case errors.Is(err, domain.ErrPaymentCorrupted):
		cardInfo = "Unreadable (please re-save your card)"
	}

	a.panel("Account Details", fmt.Sprintf("Name: %s\nEmail: %s\nSaved Card: %s", acc.Name, acc.Email, cardInfo))

	if a.prompt("Change password? (1.Yes / 2.No): ") != "1" {
		return
	}

	oldPw := a.password("Enter old password: ")
	newPw := a.password("Enter new password: ")
	confirm := a.password("Confirm new password: ")
	if newPw != confirm {
		a.warn("Passwords do not match!")
		return
	}

	err = a.Accounts.ChangePassword(a.email, oldPw, newPw)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.warn("Incorrect old password!")
	case err != nil:
		a.warn("Could not change password: %v", err)
	default:
		a.ok("Password updated successfully!")
	}
}

func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

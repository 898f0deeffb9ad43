package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"yippee/internal/domain"
)

func (a *App) placeOrderFlow(ctx context.Context) error {
	a.note("Fetching nearby restaurants...")
	restaurants, err := a.Catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("load restaurants: %w", err)
	}

	rows := make([][]string, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, []string{r.Name, r.Details["Location"], r.Details["Cuisine"], r.Details["Rating"]})
	}
	a.table("Available Restaurants", []string{"Name", "Location", "Cuisine", "Rating"}, rows)

	selected := a.prompt("\nEnter restaurant name: ")
	var restaurant *domain.Restaurant
	for i := range restaurants {
		if strings.EqualFold(restaurants[i].Name, selected) {
			restaurant = &restaurants[i]
			break
		}
	}
	if restaurant == nil {
		a.warn("Restaurant not found!")
		return nil
	}

	return a.menuLoop(ctx, restaurant)
}

func (a *App) menuLoop(ctx context.Context, restaurant *domain.Restaurant) error {
	var cart []domain.OrderItem

	dishes := make([]string, 0, len(restaurant.Menu))
	for dish := range restaurant.Menu {
		dishes = append(dishes, dish)
	}
	sort.Strings(dishes)

	for {
		rows := make([][]string, 0, len(dishes))
		for _, dish := range dishes {
			rows = append(rows, []string{dish, fmt.Sprintf("%.2f INR", restaurant.Menu[dish])})
		}
		a.table("Menu - "+restaurant.Name, []string{"Dish", "Price"}, rows)

		choice := a.prompt(`Enter dish to add (or "checkout" to proceed): `)
		if a.inputClosed && choice == "" {
			return nil
		}
		if strings.EqualFold(choice, "checkout") {
			if len(cart) == 0 {
				a.warn("Cart is empty.")
				return nil
			}
			return a.checkout(ctx, restaurant.Name, cart)
		}

		unitPrice, ok := restaurant.Menu[choice]
		if !ok {
			a.warn("Invalid dish name.")
			continue
		}

		qty, err := strconv.Atoi(a.prompt("Enter quantity: "))
		if err != nil || qty <= 0 {
			a.warn("Invalid quantity.")
			continue
		}

		subtotal := float64(qty) * unitPrice
		cart = append(cart, domain.OrderItem{Dish: choice, Quantity: qty, Price: subtotal})
		a.ok("Added %s x%d (%.2f INR)", choice, qty, subtotal)
	}
}

func (a *App) checkout(ctx context.Context, restaurant string, cart []domain.OrderItem) error {
	var total float64
	rows := make([][]string, 0, len(cart))
	for _, item := range cart {
		total += item.Price
		rows = append(rows, []string{item.Dish, strconv.Itoa(item.Quantity), fmt.Sprintf("%.2f INR", item.Price)})
	}

	fmt.Fprintln(a.out, "\nYour Cart Summary:")
	a.table("Cart", []string{"Dish", "Qty", "Price"}, rows)
	fmt.Fprintf(a.out, "Total = %.2f INR\n\n", total)

	// Kitchen promises delivery somewhere in a 20-50 minute window.
	deliveryWindow := time.Duration(a.rng.Intn(31)+20) * time.Minute
	scheduledAt := time.Now().Add(deliveryWindow)

	if a.prompt("Payment Method (1.Cash / 2.Card): ") == "2" {
		a.cardPayment(total, deliveryWindow, len(cart))
	} else {
		a.ok("Order placed successfully! Pay on delivery.")
	}

	orderID, err := a.Orders.Place(ctx, &domain.Order{
		Email:       a.email,
		Restaurant:  restaurant,
		ScheduledAt: scheduledAt,
		TotalPrice:  total,
		Items:       cart,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order #%d confirmed. Estimated delivery: %d minutes\n", orderID, int(deliveryWindow.Minutes()))
	return nil
}

func (a *App) cardPayment(total float64, deliveryWindow time.Duration, itemCount int) {
	ins, err := a.Payments.Lookup(a.email)
	if err == nil {
		use := a.prompt(fmt.Sprintf("Use saved %s ending %s? (1.Yes / 2.No): ", ins.CardType, lastFour(ins.CardNumber)))
		if use != "2" {
			fmt.Fprintf(a.out, "Paid using saved %s ending %s\n", ins.CardType, lastFour(ins.CardNumber))
			return
		}
	} else if errors.Is(err, domain.ErrPaymentCorrupted) {
		a.warn("Your saved card could not be read; please enter it again.")
	}

	a.enterNewCard(total, deliveryWindow, itemCount)
}

func (a *App) enterNewCard(total float64, deliveryWindow time.Duration, itemCount int) {
	fmt.Fprintln(a.out, "\nPayment Section")
	save := a.prompt("Save card for future? (1.Yes / 2.No): ")

	var card, cvv, expiry string
	for {
		card = a.prompt("Enter 16-digit card number: ")
		if validCardNumber(card) {
			break
		}
		if a.inputClosed {
			return
		}
		a.warn("Invalid card number. Try again.")
	}
	for {
		cvv = a.prompt("Enter CVV (3-4 digits): ")
		if validCVV(cvv) {
			break
		}
		if a.inputClosed {
			return
		}
		a.warn("Invalid CVV. Try again.")
	}
	for {
		expiry = a.prompt("Enter Expiry (MM/YY): ")
		if validExpiry(expiry) {
			break
		}
		if a.inputClosed {
			return
		}
		a.warn("Invalid expiry format. Try again.")
	}

	cardType := cardTypeLabel(card)
	if save != "2" {
		if err := a.Payments.Save(a.email, card, cvv, expiry); err != nil {
			a.warn("Could not save card: %v", err)
		}
	}

	fmt.Fprintf(a.out, "\nPayment successful using %s ending with %s\n", cardType, lastFour(card))
	fmt.Fprintf(a.out, "Order placed for %d items. Total = %.2f INR\n", itemCount, total)
	fmt.Fprintf(a.out, "Estimated delivery: %d minutes\n", int(deliveryWindow.Minutes()))
}

package storage

import (
	"encoding/json"
	"fmt"

	"yippee/internal/domain"
)

// seedRestaurants is the fixed catalog provisioned on first run.
var seedRestaurants = []domain.Restaurant{
	{
		Name: "Grana Pizzeria",
		Menu: map[string]float64{
			"Mineral Water":              20.00,
			"Garlic Bread":               120.00,
			"Bruschetta":                 150.00,
			"Mozzarella Sticks":          180.00,
			"Margherita Pizza":           350.00,
			"Smoked Chicken Pesto Pizza": 450.00,
			"Tiramisu":                   220.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 1234567",
			"Website":       "www.granapizzeria.com",
			"Opening Hours": "11:00 - 23:00",
			"Cuisine":       "Italian / Pizza",
			"Rating":        "4.6",
		},
	},
	{
		Name: "Mash Restocafe",
		Menu: map[string]float64{
			"Mineral Water":   20.00,
			"Cold Coffee":     150.00,
			"French Fries":    120.00,
			"Fish Fingers":    220.00,
			"Soup of the Day": 150.00,
			"Burger":          280.00,
			"Pasta Alfredo":   300.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 2233445",
			"Website":       "www.mashrestocafe.com",
			"Opening Hours": "10:00 - 23:00",
			"Cuisine":       "Café / Continental",
			"Rating":        "4.5",
		},
	},
	{
		Name: "P60",
		Menu: map[string]float64{
			"Mineral Water":    20.00,
			"Passion Lemonade": 100.00,
			"Garlic Bread":     120.00,
			"Soup of the Day":  150.00,
			"Italian Pizza":    400.00,
			"Lasagna":          350.00,
			"Tiramisu":         200.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 3344556",
			"Website":       "www.p60cafe.com",
			"Opening Hours": "12:00 - 23:00",
			"Cuisine":       "Pizza / Italian / Café",
			"Rating":        "4.4",
		},
	},
	{
		Name: "Happy Cup",
		Menu: map[string]float64{
			"Mineral Water":            20.00,
			"Soft Drink":               40.00,
			"Samosa":                   50.00,
			"Chaat":                    100.00,
			"Kebab":                    180.00,
			"Butter Chicken with Naan": 300.00,
			"Chole Bhature":            150.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 4455667",
			"Website":       "www.happycupcafe.com",
			"Opening Hours": "09:00 - 22:00",
			"Cuisine":       "Café / Indian Street Food",
			"Rating":        "4.3",
		},
	},
	{
		Name: "Gokul Oottupura",
		Menu: map[string]float64{
			"Mineral Water":     20.00,
			"Idli":              40.00,
			"Dosa":              60.00,
			"Vada":              50.00,
			"Meals (Veg Thali)": 120.00,
			"Uttapam":           80.00,
			"Filter Coffee":     40.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 5566778",
			"Website":       "www.gokuloottupura.com",
			"Opening Hours": "07:00 - 22:00",
			"Cuisine":       "South Indian (Vegetarian)",
			"Rating":        "4.4",
		},
	},
	{
		Name: "1947 Restaurant",
		Menu: map[string]float64{
			"Mineral Water":    20.00,
			"Paneer Tikka":     220.00,
			"Chicken Tandoori": 280.00,
			"Dal Makhani":      180.00,
			"Butter Naan":      40.00,
			"Chicken Biryani":  260.00,
			"Gulab Jamun":      90.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 6677889",
			"Website":       "www.1947restaurant.com",
			"Opening Hours": "12:00 - 23:00",
			"Cuisine":       "North Indian",
			"Rating":        "4.5",
		},
	},
	{
		Name: "Zaatar Restaurant",
		Menu: map[string]float64{
			"Mineral Water":       20.00,
			"Hummus with Pita":    150.00,
			"Falafel":             180.00,
			"Shawarma Roll":       200.00,
			"Chicken Mandi":       350.00,
			"Mixed Grill Platter": 480.00,
			"Baklava":             200.00,
		},
		Details: map[string]string{
			"Location":      "Panampilly Nagar, Kochi",
			"Phone":         "+91 484 7788990",
			"Website":       "www.zaatarcafe.com",
			"Opening Hours": "11:00 - 23:00",
			"Cuisine":       "Arabic / Middle Eastern",
			"Rating":        "4.6",
		},
	},
}

// SeedRestaurants provisions the catalog when the table is empty. Menus and
// details are stored as JSON text.
func (r *PostgresRepository) SeedRestaurants() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return fmt.Errorf("seed restaurants: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, rest := range seedRestaurants {
		menuJSON, err := json.Marshal(rest.Menu)
		if err != nil {
			return fmt.Errorf("seed %q: encode menu: %w", rest.Name, err)
		}
		detailsJSON, err := json.Marshal(rest.Details)
		if err != nil {
			return fmt.Errorf("seed %q: encode details: %w", rest.Name, err)
		}
		if _, err := r.DB.Exec(
			"INSERT INTO restaurants (name, menu, details) VALUES ($1, $2, $3)",
			rest.Name, string(menuJSON), string(detailsJSON),
		); err != nil {
			return fmt.Errorf("seed %q: %w", rest.Name, err)
		}
	}
	return nil
}

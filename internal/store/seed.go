package store

import (
	"log/slog"

	"github.com/mtarza13/FlavorDash/internal/models"
)

// Seed provisions the starter catalog and the admin account on first open.
// Each collection is checked before writing, so reopening an existing database
// never overwrites user data.
func (s *SQLiteStore) Seed() error {
	hasProducts, err := s.hasCollection(keyProducts)
	if err != nil {
		return err
	}
	if !hasProducts {
		slog.Info("Seeding product catalog", "count", len(SeedProducts))
		if err := s.PutProducts(SeedProducts); err != nil {
			return err
		}
	}

	hasUsers, err := s.hasCollection(keyUsers)
	if err != nil {
		return err
	}
	if !hasUsers {
		slog.Info("Seeding admin user", "email", AdminEmail)
		admin := models.User{
			ID:        "admin",
			Name:      "Admin User",
			Email:     AdminEmail,
			Phone:     "555-0199",
			Role:      models.RoleAdmin,
			Favorites: []string{},
		}
		if err := s.PutUsers([]models.User{admin}); err != nil {
			return err
		}
	}

	hasOrders, err := s.hasCollection(keyOrders)
	if err != nil {
		return err
	}
	if !hasOrders {
		if err := s.PutOrders([]models.Order{}); err != nil {
			return err
		}
	}

	return nil
}

// AdminEmail is the pre-provisioned administrator account.
const AdminEmail = "admin@flavor.dash"

// SeedProducts is the starter menu.
var SeedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Truffle Mushroom Burger",
		Description: "Juicy beef patty topped with truffle mayo, swiss cheese, and sautéed mushrooms.",
		Price:       16.99,
		Category:    "Burgers",
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&q=80",
		Rating:      4.8,
		Calories:    850,
		PrepTime:    20,
		Ingredients: []string{"Beef Patty", "Brioche Bun", "Swiss Cheese", "Truffle Oil", "Mushrooms", "Lettuce"},
		IsAvailable: true,
		Reviews:     124,
	},
	{
		ID:          "101",
		Name:        "Classic Cheeseburger",
		Description: "The timeless classic with cheddar, lettuce, tomato, and house sauce.",
		Price:       12.99,
		Category:    "Burgers",
		Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?auto=format&fit=crop&w=800&q=80",
		Rating:      4.5,
		Calories:    700,
		PrepTime:    15,
		Ingredients: []string{"Beef Patty", "Cheddar", "Lettuce", "Tomato", "House Sauce"},
		IsAvailable: true,
		Reviews:     200,
	},
	{
		ID:          "102",
		Name:        "Spicy Chicken Burger",
		Description: "Crispy fried chicken breast with spicy slaw and pickles.",
		Price:       14.50,
		Category:    "Burgers",
		Image:       "https://images.unsplash.com/photo-1615557960916-5f4791effe9d?auto=format&fit=crop&w=800&q=80",
		Rating:      4.3,
		Calories:    750,
		PrepTime:    18,
		Ingredients: []string{"Fried Chicken", "Spicy Slaw", "Pickles", "Mayo"},
		IsAvailable: true,
		Reviews:     85,
	},
	{
		ID:          "2",
		Name:        "Margherita Supreme",
		Description: "Classic tomato sauce, fresh buffalo mozzarella, basil, and a drizzle of olive oil.",
		Price:       14.50,
		Category:    "Pizza",
		Image:       "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?auto=format&fit=crop&w=800&q=80",
		Rating:      4.5,
		Calories:    700,
		PrepTime:    25,
		Ingredients: []string{"Pizza Dough", "San Marzano Tomato", "Buffalo Mozzarella", "Fresh Basil", "Olive Oil"},
		IsAvailable: true,
		Reviews:     89,
	},
	{
		ID:          "201",
		Name:        "Pepperoni Feast",
		Description: "Loaded with double pepperoni and extra cheese.",
		Price:       16.00,
		Category:    "Pizza",
		Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?auto=format&fit=crop&w=800&q=80",
		Rating:      4.7,
		Calories:    900,
		PrepTime:    25,
		Ingredients: []string{"Pepperoni", "Mozzarella", "Tomato Sauce", "Oregano"},
		IsAvailable: true,
		Reviews:     310,
	},
	{
		ID:          "202",
		Name:        "Truffle Pizza",
		Description: "White base pizza with truffle cream, mushrooms, and thyme.",
		Price:       19.50,
		Category:    "Pizza",
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=800&q=80",
		Rating:      4.9,
		Calories:    820,
		PrepTime:    28,
		Ingredients: []string{"Truffle Cream", "Mushrooms", "Thyme", "Mozzarella"},
		IsAvailable: false,
		Reviews:     50,
	},
	{
		ID:          "3",
		Name:        "Dragon Roll",
		Description: "Eel and cucumber inside, topped with avocado and tobiko.",
		Price:       18.00,
		Category:    "Sushi",
		Image:       "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=800&q=80",
		Rating:      4.9,
		Calories:    450,
		PrepTime:    15,
		Ingredients: []string{"Sushi Rice", "Nori", "Eel", "Cucumber", "Avocado", "Tobiko"},
		IsAvailable: true,
		Reviews:     215,
	},
	{
		ID:          "6",
		Name:        "Spicy Tuna Roll",
		Description: "Fresh tuna mixed with spicy mayo and cucumber.",
		Price:       11.50,
		Category:    "Sushi",
		Image:       "https://images.unsplash.com/photo-1553621042-f6e147245754?auto=format&fit=crop&w=800&q=80",
		Rating:      4.4,
		Calories:    320,
		PrepTime:    12,
		Ingredients: []string{"Tuna", "Spicy Mayo", "Cucumber", "Sushi Rice", "Nori"},
		IsAvailable: true,
		Reviews:     98,
	},
	{
		ID:          "4",
		Name:        "Quinoa Power Salad",
		Description: "Mixed greens, quinoa, chickpeas, avocado, and lemon tahini dressing.",
		Price:       12.99,
		Category:    "Salads",
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=800&q=80",
		Rating:      4.6,
		Calories:    380,
		PrepTime:    10,
		Ingredients: []string{"Mixed Greens", "Quinoa", "Chickpeas", "Avocado", "Lemon", "Tahini"},
		IsAvailable: true,
		Reviews:     56,
	},
	{
		ID:          "401",
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce, parmesan cheese, croutons, and caesar dressing.",
		Price:       10.50,
		Category:    "Salads",
		Image:       "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?auto=format&fit=crop&w=800&q=80",
		Rating:      4.2,
		Calories:    450,
		PrepTime:    10,
		Ingredients: []string{"Romaine", "Parmesan", "Croutons", "Caesar Dressing"},
		IsAvailable: true,
		Reviews:     120,
	},
	{
		ID:          "5",
		Name:        "Molten Lava Cake",
		Description: "Warm chocolate cake with a gooey center, served with vanilla ice cream.",
		Price:       9.99,
		Category:    "Desserts",
		Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?auto=format&fit=crop&w=800&q=80",
		Rating:      4.9,
		Calories:    550,
		PrepTime:    15,
		Ingredients: []string{"Dark Chocolate", "Butter", "Eggs", "Sugar", "Flour", "Vanilla Ice Cream"},
		IsAvailable: true,
		Reviews:     342,
	},
	{
		ID:          "501",
		Name:        "Berry Cheesecake",
		Description: "New York style cheesecake topped with fresh berry compote.",
		Price:       8.50,
		Category:    "Desserts",
		Image:       "https://images.unsplash.com/photo-1508737027454-e6454ef45afd?auto=format&fit=crop&w=800&q=80",
		Rating:      4.7,
		Calories:    480,
		PrepTime:    10,
		Ingredients: []string{"Cream Cheese", "Graham Cracker", "Berries", "Sugar"},
		IsAvailable: true,
		Reviews:     150,
	},
	{
		ID:          "601",
		Name:        "Fresh Lemonade",
		Description: "Squeezed fresh daily with a hint of mint.",
		Price:       4.50,
		Category:    "Drinks",
		Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=800&q=80",
		Rating:      4.5,
		Calories:    120,
		PrepTime:    5,
		Ingredients: []string{"Lemon", "Water", "Sugar", "Mint"},
		IsAvailable: true,
		Reviews:     80,
	},
	{
		ID:          "602",
		Name:        "Iced Matcha Latte",
		Description: "Premium matcha green tea with oat milk and ice.",
		Price:       5.95,
		Category:    "Drinks",
		Image:       "https://images.unsplash.com/photo-1515823664811-14741f528987?auto=format&fit=crop&w=800&q=80",
		Rating:      4.8,
		Calories:    180,
		PrepTime:    5,
		Ingredients: []string{"Matcha Powder", "Oat Milk", "Ice", "Agave"},
		IsAvailable: true,
		Reviews:     210,
	},
}

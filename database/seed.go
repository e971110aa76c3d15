package database

import "github.com/yeremiapane/little-lemon/models"

// MenuSeed adalah daftar menu tetap yang dimasukkan sekali saat database baru.
var MenuSeed = []models.MenuItem{
	{
		ID:          1,
		Name:        "Greek Salad",
		Description: "The famous greek salad of crispy lettuce, peppers, olives and our Chicago style feta cheese, garnished with crunchy garlic and rosemary croutons.",
		Price:       "$12.99",
		Image:       "greekSalad",
		Category:    "Starters",
	},
	{
		ID:          2,
		Name:        "Bruschetta",
		Description: "Our Bruschetta is made from grilled bread that has been smeared with garlic and seasoned with salt and olive oil.",
		Price:       "$7.99",
		Image:       "bruchetta",
		Category:    "Starters",
	},
	{
		ID:          3,
		Name:        "Grilled Fish",
		Description: "Fish marinated in olive oil, lemon juice, and herbs, grilled to perfection and served with seasonal vegetables.",
		Price:       "$18.99",
		Image:       "grilledFish",
		Category:    "Mains",
	},
	{
		ID:          4,
		Name:        "Pasta",
		Description: "Penne with fried aubergines, cherry tomatoes, tomato sauce, fresh chilli, garlic, basil and salted ricotta cheese.",
		Price:       "$15.99",
		Image:       "pasta",
		Category:    "Mains",
	},
	{
		ID:          5,
		Name:        "Lemon Dessert",
		Description: "Traditional homemade Italian Lemon Ricotta Cake, served with a cup of coffee or tea.",
		Price:       "$8.99",
		Image:       "lemonDessert",
		Category:    "Desserts",
	},
}

package service

import (
	"tandoor/internal/domains/menu/model"
)

// seedCatalog is the fixed menu inserted on first run against an empty store.
// Editing it never touches existing rows: the seed only applies when the
// menu_items table is empty.
var seedCatalog = []model.MenuItem{
	{
		Name:        "Paneer Tikka",
		Description: "Grilled paneer with spices",
		Price:       250.0,
		Category:    model.CategoryStarters,
		ImageURL:    "static/images/paneertikka.png",
		Available:   true,
	},
	{
		Name:        "Shahi Paneer",
		Description: "Creamy tomato curry with paneer",
		Price:       350.0,
		Category:    model.CategoryMainCourse,
		ImageURL:    "static/images/shahipaneer.png",
		Available:   true,
	},
	{
		Name:        "Gulab Jamun",
		Description: "Sweet milk dumplings in syrup",
		Price:       120.0,
		Category:    model.CategoryDesserts,
		ImageURL:    "static/images/gulabjamun.png",
		Available:   true,
	},
	{
		Name:        "Lassi",
		Description: "Traditional yogurt drink",
		Price:       80.0,
		Category:    model.CategoryBeverages,
		ImageURL:    "static/images/lassi.png",
		Available:   true,
	},
}

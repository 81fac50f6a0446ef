package model

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldImageURL    = "image_url"
	FieldAvailable   = "available"
)

// Category is the closed set of menu sections. Values outside the set never
// make it past ParseCategory, so the store only ever sees valid categories.
type Category string

const (
	CategoryStarters   Category = "starters"
	CategoryMainCourse Category = "main_course"
	CategoryDesserts   Category = "desserts"
	CategoryBeverages  Category = "beverages"
)

func (c Category) String() string {
	return string(c)
}

// Categories returns all menu sections in display order.
func Categories() []Category {
	return []Category{CategoryStarters, CategoryMainCourse, CategoryDesserts, CategoryBeverages}
}

// ParseCategory maps a raw string onto the closed category set. The second
// return is false for anything outside the set, including the "all" sentinel.
func ParseCategory(value string) (Category, bool) {
	switch Category(value) {
	case CategoryStarters, CategoryMainCourse, CategoryDesserts, CategoryBeverages:
		return Category(value), true
	default:
		return "", false
	}
}

type MenuItem struct {
	ID          int64    `db:"id"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Price       float64  `db:"price"`
	Category    Category `db:"category"`
	ImageURL    string   `db:"image_url"`
	Available   bool     `db:"available"`
}

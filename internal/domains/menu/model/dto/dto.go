package dto

import (
	"tandoor/internal/domains/menu/model"
	"tandoor/shared"
)

// PublicMenuItem is the catalog entry shape exposed to the website and the
// public API. The availability flag is internal: unavailable rows are
// filtered out server-side and the flag itself is never echoed.
type PublicMenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (r *PublicMenuItem) FromModel(item model.MenuItem) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Price = item.Price
	r.Category = item.Category.String()
	r.ImageURL = item.ImageURL
}

func PublicMenuItems(models []model.MenuItem) []PublicMenuItem {
	items := make([]PublicMenuItem, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return items
}

// GetMenuResponse is the filtered catalog listing.
type GetMenuResponse struct {
	Items      []PublicMenuItem `json:"items"`
	Categories []string         `json:"categories"`
	Category   string           `json:"category"`
}

func (r *GetMenuResponse) FromModels(models []model.MenuItem, category string) {
	r.Items = PublicMenuItems(models)
	r.Category = category

	r.Categories = make([]string, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		r.Categories = append(r.Categories, cat.String())
	}
}

// AdminMenuItem includes the availability flag, visible only on the admin
// surface.
type AdminMenuItem struct {
	PublicMenuItem
	Available bool `json:"available"`
}

func (r *AdminMenuItem) FromModel(item model.MenuItem) {
	r.PublicMenuItem.FromModel(item)
	r.Available = item.Available
}

type GetAdminMenuResponse struct {
	Items     []AdminMenuItem `json:"items"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAdminMenuResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]AdminMenuItem, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

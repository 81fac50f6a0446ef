package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tandoor/internal/domains/menu/model"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		value string
		want  model.Category
		ok    bool
	}{
		{value: "starters", want: model.CategoryStarters, ok: true},
		{value: "main_course", want: model.CategoryMainCourse, ok: true},
		{value: "desserts", want: model.CategoryDesserts, ok: true},
		{value: "beverages", want: model.CategoryBeverages, ok: true},
		{value: "sushi", ok: false},
		{value: "", ok: false},
		{value: "Starters", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := model.ParseCategory(tt.value)

			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCategories_DisplayOrder(t *testing.T) {
	categories := model.Categories()

	assert.Equal(t, []model.Category{
		model.CategoryStarters,
		model.CategoryMainCourse,
		model.CategoryDesserts,
		model.CategoryBeverages,
	}, categories)
}

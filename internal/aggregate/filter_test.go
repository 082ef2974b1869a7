package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda/internal/model"
)

func TestByCategory(t *testing.T) {
	products := []model.Product{
		{ID: "p1", Name: "Suco", CategoryID: "2455e6c143b24a000000000000000000"},
		{ID: "p2", Name: "Pudim", CategoryID: "deadbeefdeadbeefdeadbeefdeadbeef"},
	}

	t.Run("normalized match across formats", func(t *testing.T) {
		out := ByCategory(products, "2455e6c1-43b2-4a00-0000-000000000000")
		require.Len(t, out, 1)
		assert.Equal(t, "p1", out[0].ID)
	})

	t.Run("empty selection returns full catalogue", func(t *testing.T) {
		out := ByCategory(products, "")
		assert.Len(t, out, 2)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		out := ByCategory(products, "0000aaaa0000aaaa0000aaaa0000aaaa")
		assert.Empty(t, out)
	})
}

func TestActiveOnly(t *testing.T) {
	products := []model.Product{
		{ID: "p1", Active: true},
		{ID: "p2", Active: false},
		{ID: "p3", Active: true},
	}

	out := ActiveOnly(products)
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p3", out[1].ID)
}

func TestCategoryFor(t *testing.T) {
	categories := []model.Category{
		{ID: "c1-aaaa", Name: "Bebidas"},
		{ID: "c2-bbbb", Name: "Sobremesas"},
	}

	found := CategoryFor(model.Product{CategoryID: "C2BBBB"}, categories)
	require.NotNil(t, found)
	assert.Equal(t, "Sobremesas", found.Name)

	assert.Nil(t, CategoryFor(model.Product{CategoryID: "c9-zzzz"}, categories))
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_NoOptions_ReturnsEverything(t *testing.T) {
	products := SeedProducts()
	result := Filter(products, FilterOptions{})
	assert.Len(t, result, len(products))
}

func TestFilter_CategoryAndSearch(t *testing.T) {
	products := SeedProducts()

	result := Filter(products, FilterOptions{Category: "men", Search: "blazer"})

	require.Len(t, result, 1)
	assert.Equal(t, "Modern Slim Fit Blazer", result[0].Title)
}

func TestFilter_Category(t *testing.T) {
	products := SeedProducts()

	tests := []struct {
		category string
		want     int
	}{
		{"men", 3},
		{"women", 3},
		{"kids", 3},
		{"accessories", 3},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			result := Filter(products, FilterOptions{Category: tt.category})
			assert.Len(t, result, tt.want)
			for _, p := range result {
				assert.Equal(t, tt.category, p.Category)
			}
		})
	}
}

func TestFilter_PriceBoundsInclusive(t *testing.T) {
	products := []*Product{
		{ID: "a", Title: "A", Price: 1000},
		{ID: "b", Title: "B", Price: 2000},
		{ID: "c", Title: "C", Price: 3000},
	}

	result := Filter(products, FilterOptions{MinPrice: 1000, MaxPrice: 2000})

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "b", result[1].ID)
}

func TestFilter_ZeroBoundsDoNotNarrow(t *testing.T) {
	products := []*Product{
		{ID: "a", Title: "A", Price: 1000},
		{ID: "b", Title: "B", Price: 99999},
	}

	result := Filter(products, FilterOptions{MinPrice: 0, MaxPrice: 0})
	assert.Len(t, result, 2)
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	products := SeedProducts()

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"lowercase title match", "blazer", 1},
		{"uppercase title match", "BLAZER", 1},
		{"description match", "uv protection", 1},
		{"shared word", "denim", 2},
		{"no match", "spacesuit", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(products, FilterOptions{Search: tt.search})
			assert.Len(t, result, tt.want)
		})
	}
}

func TestFilter_AllCriteriaCombine(t *testing.T) {
	products := SeedProducts()

	// "denim" matches Premium Denim Jeans (men, 8999) and Children's Denim
	// Overalls (kids, 3999); the category narrows it to one.
	result := Filter(products, FilterOptions{Category: "kids", Search: "denim", MinPrice: 1000, MaxPrice: 5000})

	require.Len(t, result, 1)
	assert.Equal(t, "Children's Denim Overalls", result[0].Title)
}

func TestFilter_PreservesOrder(t *testing.T) {
	products := SeedProducts()

	result := Filter(products, FilterOptions{Category: "women"})

	require.Len(t, result, 3)
	assert.Equal(t, "4", result[0].ID)
	assert.Equal(t, "5", result[1].ID)
	assert.Equal(t, "6", result[2].ID)
}

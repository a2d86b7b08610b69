package query

import (
	"math"
	"testing"

	"restaurant-analytics/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSearchRestaurants(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.CatalogCriteria
		wantIDs  []int
	}{
		{name: "no criteria", criteria: domain.CatalogCriteria{}, wantIDs: []int{1, 2, 3, 4, 5}},
		{name: "search matches name", criteria: domain.CatalogCriteria{Search: "bay"}, wantIDs: []int{2, 5}},
		{name: "search matches cuisine case-insensitively", criteria: domain.CatalogCriteria{Search: "INDIAN"}, wantIDs: []int{1, 4}},
		{name: "search matches location", criteria: domain.CatalogCriteria{Search: "mum"}, wantIDs: []int{2, 5}},
		{name: "search without match", criteria: domain.CatalogCriteria{Search: "tacos"}, wantIDs: []int{}},
		{name: "location exact match ignores case", criteria: domain.CatalogCriteria{Location: "bangalore"}, wantIDs: []int{1, 3}},
		{name: "location is not a substring match", criteria: domain.CatalogCriteria{Location: "Bang"}, wantIDs: []int{}},
		{name: "location and cuisine combine", criteria: domain.CatalogCriteria{Location: "MUMBAI", Cuisine: "italian"}, wantIDs: []int{5}},
		{
			name:     "sort by name ascending",
			criteria: domain.CatalogCriteria{Sort: "name"},
			wantIDs:  []int{5, 4, 3, 2, 1},
		},
		{
			name:     "sort by location ascending keeps ties in snapshot order",
			criteria: domain.CatalogCriteria{Sort: "location", Order: "asc"},
			wantIDs:  []int{1, 3, 4, 2, 5},
		},
		{
			name:     "sort by location descending keeps ties in snapshot order",
			criteria: domain.CatalogCriteria{Sort: "location", Order: "desc"},
			wantIDs:  []int{2, 5, 4, 1, 3},
		},
		{
			name:     "sort by cuisine descending",
			criteria: domain.CatalogCriteria{Sort: "cuisine", Order: "desc"},
			wantIDs:  []int{1, 4, 2, 3, 5},
		},
		{
			name:     "unknown sort field is a no-op",
			criteria: domain.CatalogCriteria{Sort: "rating", Order: "desc"},
			wantIDs:  []int{1, 2, 3, 4, 5},
		},
		{
			name:     "filter then sort then paginate",
			criteria: domain.CatalogCriteria{Search: "a", Sort: "name", Page: 2, Limit: 2},
			wantIDs:  []int{3, 2},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := SearchRestaurants(catalogFixture, testCase.criteria)
			assert.Equal(t, testCase.wantIDs, restaurantIDs(result.Items))
		})
	}
}

func TestSearchRestaurants_Pagination(t *testing.T) {
	result := SearchRestaurants(catalogFixture, domain.CatalogCriteria{Page: 2, Limit: 2})

	assert.Equal(t, []int{3, 4}, restaurantIDs(result.Items))
	assert.Equal(t, domain.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 5, PerPage: 2}, result.Pagination)
}

func TestSearchRestaurants_MaxIntLimit(t *testing.T) {
	result := SearchRestaurants(catalogFixture, domain.CatalogCriteria{Limit: math.MaxInt})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, restaurantIDs(result.Items))
	assert.Equal(t, domain.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 5, PerPage: math.MaxInt}, result.Pagination)
}

func TestSearchRestaurants_DefaultsAndCoercion(t *testing.T) {
	result := SearchRestaurants(catalogFixture, domain.CatalogCriteria{Page: -4, Limit: 0})

	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, domain.DefaultCatalogLimit, result.PerPage)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearchRestaurants_DoesNotReorderSnapshot(t *testing.T) {
	snapshot := append([]domain.Restaurant(nil), catalogFixture...)
	_ = SearchRestaurants(snapshot, domain.CatalogCriteria{Sort: "name"})

	assert.Equal(t, catalogFixture, snapshot)
}

func TestSearchRestaurants_ByteWiseComparison(t *testing.T) {
	restaurants := []domain.Restaurant{
		{ID: 1, Name: "apple"},
		{ID: 2, Name: "Banana"},
	}
	result := SearchRestaurants(restaurants, domain.CatalogCriteria{Sort: "name"})

	assert.Equal(t, []int{2, 1}, restaurantIDs(result.Items))
}

func TestDistinctValues(t *testing.T) {
	assert.Equal(t, []string{"Bangalore", "Mumbai", "Delhi"}, DistinctLocations(catalogFixture))
	assert.Equal(t, []string{"North Indian", "Japanese", "Italian"}, DistinctCuisines(catalogFixture))
	assert.Equal(t, []string{}, DistinctCuisines(nil))
}

func TestFindRestaurant(t *testing.T) {
	restaurants := append([]domain.Restaurant{}, catalogFixture...)
	restaurants = append(restaurants, domain.Restaurant{ID: 3, Name: "Duplicate"})

	found, ok := FindRestaurant(restaurants, 3)
	assert.True(t, ok)
	assert.Equal(t, "Pasta Palace", found.Name)

	_, ok = FindRestaurant(restaurants, 42)
	assert.False(t, ok)
}

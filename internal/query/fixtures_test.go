package query

import (
	"testing"

	"restaurant-analytics/internal/domain"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, restaurantID int, orderTime string, amount float64) domain.Order {
	t.Helper()
	ts, err := domain.ParseTimestamp(orderTime)
	require.NoError(t, err)
	return domain.Order{RestaurantID: restaurantID, OrderTime: ts, OrderAmount: amount}
}

func datePtr(t *testing.T, value string) *domain.Date {
	t.Helper()
	d, err := domain.ParseDate(value)
	require.NoError(t, err)
	return &d
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func restaurantIDs(restaurants []domain.Restaurant) []int {
	ids := make([]int, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}
	return ids
}

var catalogFixture = []domain.Restaurant{
	{ID: 1, Name: "Tandoori Treats", Location: "Bangalore", Cuisine: "North Indian"},
	{ID: 2, Name: "Sushi Bay", Location: "Mumbai", Cuisine: "Japanese"},
	{ID: 3, Name: "Pasta Palace", Location: "Bangalore", Cuisine: "Italian"},
	{ID: 4, Name: "Curry House", Location: "Delhi", Cuisine: "North Indian"},
	{ID: 5, Name: "Bay Leaf", Location: "Mumbai", Cuisine: "Italian"},
}

// sampleDayOrders holds one day of orders across two restaurants.
func sampleDayOrders(t *testing.T) []domain.Order {
	return []domain.Order{
		newOrder(t, 1, "2025-06-22T10:00", 100),
		newOrder(t, 1, "2025-06-22T10:30", 50),
		newOrder(t, 1, "2025-06-22T14:00", 200),
		newOrder(t, 2, "2025-06-22T09:00", 500),
	}
}

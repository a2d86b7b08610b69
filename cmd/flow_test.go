package cmd

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"restaurant-analytics/internal/domain"
	"restaurant-analytics/internal/storage"
	"restaurant-analytics/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flowDataset(t *testing.T) string {
	t.Helper()
	at := func(value string) domain.Timestamp {
		ts, err := domain.ParseTimestamp(value)
		require.NoError(t, err)
		return ts
	}
	dir := t.TempDir()
	require.NoError(t, storage.WriteFiles(dir, &domain.Snapshot{
		Restaurants: []domain.Restaurant{
			{ID: 101, Name: "Tandoori Treats", Location: "Bangalore", Cuisine: "North Indian"},
			{ID: 102, Name: "Sushi Bay", Location: "Mumbai", Cuisine: "Japanese"},
		},
		Orders: []domain.Order{
			{RestaurantID: 101, OrderTime: at("2025-06-22T12:15:00"), OrderAmount: 450},
			{RestaurantID: 101, OrderTime: at("2025-06-22T12:40:00"), OrderAmount: 350},
			{RestaurantID: 101, OrderTime: at("2025-06-22T19:05:00"), OrderAmount: 200},
			{RestaurantID: 102, OrderTime: at("2025-06-23T13:00:00"), OrderAmount: 900},
		},
	}))
	return dir
}

func getJSON(t *testing.T, url string, wantCode int, into interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantCode, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

// TestFullAnalyticsFlow drives the wired stack over real HTTP against a
// dataset on disk.
func TestFullAnalyticsFlow(t *testing.T) {
	dir := flowDataset(t)
	snapshots := store.New(storage.NewFileSource(dir))
	server := httptest.NewServer(buildRouter(snapshots))
	defer server.Close()

	t.Run("Health", func(t *testing.T) {
		var body map[string]interface{}
		getJSON(t, server.URL+"/health", http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("SearchCatalog", func(t *testing.T) {
		var body struct {
			Data       []domain.Restaurant  `json:"data"`
			Pagination domain.Pagination    `json:"pagination"`
			Filters    domain.FilterOptions `json:"filters"`
		}
		getJSON(t, server.URL+"/api/restaurants?search=bay", http.StatusOK, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Sushi Bay", body.Data[0].Name)
		assert.Equal(t, 1, body.Pagination.TotalItems)
		assert.Equal(t, []string{"Bangalore", "Mumbai"}, body.Filters.Locations)
	})

	t.Run("MaxIntLimit", func(t *testing.T) {
		var body struct {
			Data       []domain.Restaurant `json:"data"`
			Pagination domain.Pagination   `json:"pagination"`
		}
		getJSON(t, server.URL+"/api/restaurants?limit="+strconv.Itoa(math.MaxInt), http.StatusOK, &body)
		assert.Equal(t, 1, body.Pagination.TotalPages)
		assert.Equal(t, math.MaxInt, body.Pagination.PerPage)
		assert.NotEmpty(t, body.Data)
		assert.Len(t, body.Data, body.Pagination.TotalItems)
	})

	t.Run("DailyTrends", func(t *testing.T) {
		var body struct {
			Trends []domain.DailyTrend `json:"trends"`
		}
		getJSON(t, server.URL+"/api/restaurants/101/trends", http.StatusOK, &body)
		require.Len(t, body.Trends, 1)
		assert.Equal(t, 3, body.Trends[0].OrderCount)
		assert.Equal(t, 333.33, body.Trends[0].AverageOrderValue)
		require.NotNil(t, body.Trends[0].PeakHour)
		assert.Equal(t, 12, *body.Trends[0].PeakHour)
	})

	t.Run("TopRestaurants", func(t *testing.T) {
		var body struct {
			Data []map[string]interface{} `json:"data"`
		}
		getJSON(t, server.URL+"/api/top-restaurants?end_date=2025-06-22", http.StatusOK, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Tandoori Treats", body.Data[0]["name"])
		assert.Equal(t, 1000.0, body.Data[0]["total_revenue"])
	})

	t.Run("Orders", func(t *testing.T) {
		var body struct {
			Data []domain.Order `json:"data"`
		}
		getJSON(t, server.URL+"/api/orders?min_amount=400", http.StatusOK, &body)
		assert.Len(t, body.Data, 2)
	})

	t.Run("UnknownRestaurant", func(t *testing.T) {
		var body map[string]string
		getJSON(t, server.URL+"/api/restaurants/999", http.StatusNotFound, &body)
		assert.Equal(t, "Restaurant not found", body["error"])
	})

	t.Run("RefreshAfterRewrite", func(t *testing.T) {
		require.NoError(t, storage.WriteFiles(dir, &domain.Snapshot{
			Restaurants: []domain.Restaurant{{ID: 103, Name: "Pasta Palace", Location: "Bangalore", Cuisine: "Italian"}},
			Orders:      []domain.Order{},
		}))
		require.NoError(t, snapshots.Invalidate(context.Background()))

		var body struct {
			Data []domain.Restaurant `json:"data"`
		}
		getJSON(t, server.URL+"/api/restaurants", http.StatusOK, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Pasta Palace", body.Data[0].Name)
	})
}

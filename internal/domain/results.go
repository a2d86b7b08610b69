package domain

type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PerPage     int `json:"per_page"`
}

type PaginationResult[T any] struct {
	Items      []T `json:"data"`
	Pagination `json:"pagination"`
}

type FilterOptions struct {
	Locations []string `json:"locations"`
	Cuisines  []string `json:"cuisines"`
}

type RestaurantList struct {
	PaginationResult[Restaurant]
	Filters FilterOptions `json:"filters"`
}

type DailyTrend struct {
	Date              string  `json:"date"`
	OrderCount        int     `json:"order_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	PeakHour          *int    `json:"peak_hour"`
	PeakHourOrders    int     `json:"peak_hour_orders"`
}

type RankedRestaurant struct {
	RestaurantID      int     `json:"restaurant_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	OrderCount        int     `json:"order_count"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// TopRestaurant is a ranked revenue group joined with its restaurant.
type TopRestaurant struct {
	Restaurant
	RankedRestaurant
}

type DateRange struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type TrendReport struct {
	Restaurant Restaurant   `json:"restaurant"`
	Trends     []DailyTrend `json:"trends"`
	DateRange  DateRange    `json:"date_range"`
}

type TopRestaurantsReport struct {
	Data      []TopRestaurant `json:"data"`
	DateRange DateRange       `json:"date_range"`
}

package query

import (
	"sort"

	"restaurant-analytics/internal/domain"
)

// RankRestaurants groups orders in the date window by restaurant and returns
// the top groups by revenue. Equal revenue is broken by ascending
// restaurant id so the ranking is stable across runs.
func RankRestaurants(orders []domain.Order, criteria domain.RankCriteria) []domain.RankedRestaurant {
	matched := Filter(orders, InDateWindow(criteria.DateWindow))

	var ranked []domain.RankedRestaurant
	byID := make(map[int]int)
	revenue := make([]float64, 0)
	for _, o := range matched {
		i, ok := byID[o.RestaurantID]
		if !ok {
			i = len(ranked)
			byID[o.RestaurantID] = i
			ranked = append(ranked, domain.RankedRestaurant{RestaurantID: o.RestaurantID})
			revenue = append(revenue, 0)
		}
		ranked[i].OrderCount++
		revenue[i] += o.OrderAmount
	}

	for i := range ranked {
		ranked[i].TotalRevenue = roundCents(revenue[i])
		if ranked[i].OrderCount > 0 {
			ranked[i].AverageOrderValue = roundCents(revenue[i] / float64(ranked[i].OrderCount))
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalRevenue != ranked[j].TotalRevenue {
			return ranked[i].TotalRevenue > ranked[j].TotalRevenue
		}
		return ranked[i].RestaurantID < ranked[j].RestaurantID
	})

	limit := criteria.Limit
	if limit < 1 {
		limit = domain.DefaultRankLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []domain.RankedRestaurant{}
	}
	return ranked
}

// JoinRestaurants attaches restaurant details to ranked groups, keeping rank
// order. Groups whose restaurant is not in the catalog are dropped.
func JoinRestaurants(ranked []domain.RankedRestaurant, restaurants []domain.Restaurant) []domain.TopRestaurant {
	joined := make([]domain.TopRestaurant, 0, len(ranked))
	for _, group := range ranked {
		restaurant, ok := FindRestaurant(restaurants, group.RestaurantID)
		if !ok {
			continue
		}
		joined = append(joined, domain.TopRestaurant{
			Restaurant:       restaurant,
			RankedRestaurant: group,
		})
	}
	return joined
}

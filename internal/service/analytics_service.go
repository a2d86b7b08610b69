package service

import (
	"context"
	"time"

	"restaurant-analytics/internal/domain"
	"restaurant-analytics/internal/query"
)

// AnalyticsService answers every request from exactly one snapshot, fetched
// at the start of the call.
type AnalyticsService struct {
	snapshots SnapshotProvider
}

func NewAnalyticsService(snapshots SnapshotProvider) *AnalyticsService {
	return &AnalyticsService{snapshots: snapshots}
}

func (s *AnalyticsService) ListRestaurants(ctx context.Context, criteria domain.CatalogCriteria) (domain.RestaurantList, error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return domain.RestaurantList{}, err
	}
	return domain.RestaurantList{
		PaginationResult: query.SearchRestaurants(snapshot.Restaurants, criteria),
		Filters: domain.FilterOptions{
			Locations: query.DistinctLocations(snapshot.Restaurants),
			Cuisines:  query.DistinctCuisines(snapshot.Restaurants),
		},
	}, nil
}

func (s *AnalyticsService) GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return domain.Restaurant{}, err
	}
	restaurant, ok := query.FindRestaurant(snapshot.Restaurants, id)
	if !ok {
		return domain.Restaurant{}, domain.ErrNotFound
	}
	return restaurant, nil
}

func (s *AnalyticsService) RestaurantTrends(ctx context.Context, criteria domain.TrendCriteria) (domain.TrendReport, error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return domain.TrendReport{}, err
	}
	restaurant, ok := query.FindRestaurant(snapshot.Restaurants, criteria.RestaurantID)
	if !ok {
		return domain.TrendReport{}, domain.ErrNotFound
	}
	return domain.TrendReport{
		Restaurant: restaurant,
		Trends:     query.OrderTrends(snapshot.Orders, criteria),
		DateRange:  criteria.Range(),
	}, nil
}

func (s *AnalyticsService) TopRestaurants(ctx context.Context, criteria domain.RankCriteria) (domain.TopRestaurantsReport, error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return domain.TopRestaurantsReport{}, err
	}
	ranked := query.RankRestaurants(snapshot.Orders, criteria)
	return domain.TopRestaurantsReport{
		Data:      query.JoinRestaurants(ranked, snapshot.Restaurants),
		DateRange: criteria.Range(),
	}, nil
}

func (s *AnalyticsService) ListOrders(ctx context.Context, criteria domain.OrderCriteria) (domain.PaginationResult[domain.Order], error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return domain.PaginationResult[domain.Order]{}, err
	}
	return query.ListOrders(snapshot.Orders, criteria), nil
}

func (s *AnalyticsService) LoadedAt() (time.Time, bool) {
	return s.snapshots.LoadedAt()
}

package service

import (
	"context"
	"time"

	"restaurant-analytics/internal/domain"
	"restaurant-analytics/internal/store"
)

type AnalyticsInterface interface {
	ListRestaurants(ctx context.Context, criteria domain.CatalogCriteria) (domain.RestaurantList, error)
	GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error)
	RestaurantTrends(ctx context.Context, criteria domain.TrendCriteria) (domain.TrendReport, error)
	TopRestaurants(ctx context.Context, criteria domain.RankCriteria) (domain.TopRestaurantsReport, error)
	ListOrders(ctx context.Context, criteria domain.OrderCriteria) (domain.PaginationResult[domain.Order], error)
	LoadedAt() (time.Time, bool)
}

type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	LoadedAt() (time.Time, bool)
}

type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

var (
	_ AnalyticsInterface  = (*AnalyticsService)(nil)
	_ SnapshotProvider    = (*store.Store)(nil)
	_ SnapshotInvalidator = (*store.Store)(nil)
)

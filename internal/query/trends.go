package query

import (
	"sort"

	"restaurant-analytics/internal/domain"
)

type hourSlot struct {
	hour  int
	count int
}

type dayBucket struct {
	date      string
	count     int
	revenue   float64
	hours     []hourSlot
	hourIndex map[int]int
}

func (b *dayBucket) add(o domain.Order) {
	b.count++
	b.revenue += o.OrderAmount

	hour := o.OrderTime.Hour()
	if i, ok := b.hourIndex[hour]; ok {
		b.hours[i].count++
		return
	}
	b.hourIndex[hour] = len(b.hours)
	b.hours = append(b.hours, hourSlot{hour: hour, count: 1})
}

// summary picks the peak hour as the first slot, in the order slots were
// opened, whose count is strictly greater than every slot before it.
func (b *dayBucket) summary() domain.DailyTrend {
	trend := domain.DailyTrend{
		Date:         b.date,
		OrderCount:   b.count,
		TotalRevenue: roundCents(b.revenue),
	}
	if b.count > 0 {
		trend.AverageOrderValue = roundCents(b.revenue / float64(b.count))
	}

	var peak *hourSlot
	for i := range b.hours {
		if peak == nil || b.hours[i].count > peak.count {
			peak = &b.hours[i]
		}
	}
	if peak != nil {
		hour := peak.hour
		trend.PeakHour = &hour
		trend.PeakHourOrders = peak.count
	}
	return trend
}

// OrderTrends buckets one restaurant's orders by calendar date. Days are
// returned in the order they are first met while scanning the snapshot
// unless criteria.Chronological asks for ascending dates.
func OrderTrends(orders []domain.Order, criteria domain.TrendCriteria) []domain.DailyTrend {
	restaurantID := criteria.RestaurantID
	matched := Filter(orders,
		ForRestaurant(&restaurantID),
		InDateWindow(criteria.DateWindow),
	)

	var days []*dayBucket
	byDate := make(map[string]*dayBucket)
	for _, o := range matched {
		date := o.OrderTime.Date().String()
		bucket, ok := byDate[date]
		if !ok {
			bucket = &dayBucket{date: date, hourIndex: make(map[int]int)}
			byDate[date] = bucket
			days = append(days, bucket)
		}
		bucket.add(o)
	}

	trends := make([]domain.DailyTrend, 0, len(days))
	for _, bucket := range days {
		trends = append(trends, bucket.summary())
	}

	if criteria.Chronological {
		sort.SliceStable(trends, func(i, j int) bool {
			return trends[i].Date < trends[j].Date
		})
	}
	return trends
}

package query

import "restaurant-analytics/internal/domain"

// ListOrders filters and paginates orders. Matches stay in snapshot order.
func ListOrders(orders []domain.Order, criteria domain.OrderCriteria) domain.PaginationResult[domain.Order] {
	matched := Filter(orders,
		ForRestaurant(criteria.RestaurantID),
		InDateWindow(criteria.DateWindow),
		AmountBetween(criteria.MinAmount, criteria.MaxAmount),
		HourBetween(criteria.StartHour, criteria.EndHour),
	)

	page, limit := normalizePaging(criteria.Page, criteria.Limit, domain.DefaultOrderLimit)
	return Paginate(matched, page, limit)
}

func ForRestaurant(id *int) Predicate[domain.Order] {
	if id == nil {
		return nil
	}
	want := *id
	return func(o domain.Order) bool {
		return o.RestaurantID == want
	}
}

// InDateWindow compares the calendar date of the order, so an order late on
// the end date still matches.
func InDateWindow(window domain.DateWindow) Predicate[domain.Order] {
	if window.Start == nil && window.End == nil {
		return nil
	}
	return func(o domain.Order) bool {
		day := o.OrderTime.Date()
		if window.Start != nil && day.Before(window.Start.Time) {
			return false
		}
		if window.End != nil && day.After(window.End.Time) {
			return false
		}
		return true
	}
}

func AmountBetween(low, high *float64) Predicate[domain.Order] {
	if low == nil && high == nil {
		return nil
	}
	return func(o domain.Order) bool {
		if low != nil && o.OrderAmount < *low {
			return false
		}
		if high != nil && o.OrderAmount > *high {
			return false
		}
		return true
	}
}

func HourBetween(start, end *int) Predicate[domain.Order] {
	if start == nil && end == nil {
		return nil
	}
	return func(o domain.Order) bool {
		hour := o.OrderTime.Hour()
		if start != nil && hour < *start {
			return false
		}
		if end != nil && hour > *end {
			return false
		}
		return true
	}
}

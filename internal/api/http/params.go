package httpapi

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"restaurant-analytics/internal/domain"
)

// Numeric parameters are permissive: a value that does not parse is treated
// as absent. Dates are strict and fail the request.

func intParam(q url.Values, key string) (int, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func optionalInt(q url.Values, key string) *int {
	v, ok := intParam(q, key)
	if !ok {
		return nil
	}
	return &v
}

func optionalFloat(q url.Values, key string) *float64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func pageAndLimit(q url.Values) (int, int) {
	page, _ := intParam(q, "page")
	limit, _ := intParam(q, "limit")
	return page, limit
}

func dateWindow(q url.Values) (domain.DateWindow, error) {
	var window domain.DateWindow
	if raw := strings.TrimSpace(q.Get("start_date")); raw != "" {
		start, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateWindow{}, err
		}
		window.Start = &start
	}
	if raw := strings.TrimSpace(q.Get("end_date")); raw != "" {
		end, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateWindow{}, err
		}
		window.End = &end
	}
	return window, nil
}

func catalogCriteria(q url.Values) domain.CatalogCriteria {
	page, limit := pageAndLimit(q)
	return domain.CatalogCriteria{
		Search:   strings.TrimSpace(q.Get("search")),
		Location: strings.TrimSpace(q.Get("location")),
		Cuisine:  strings.TrimSpace(q.Get("cuisine")),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
		Page:     page,
		Limit:    limit,
	}
}

func orderCriteria(q url.Values) (domain.OrderCriteria, error) {
	window, err := dateWindow(q)
	if err != nil {
		return domain.OrderCriteria{}, err
	}
	page, limit := pageAndLimit(q)
	return domain.OrderCriteria{
		RestaurantID: optionalInt(q, "restaurant_id"),
		DateWindow:   window,
		MinAmount:    optionalFloat(q, "min_amount"),
		MaxAmount:    optionalFloat(q, "max_amount"),
		StartHour:    optionalInt(q, "start_hour"),
		EndHour:      optionalInt(q, "end_hour"),
		Page:         page,
		Limit:        limit,
	}, nil
}

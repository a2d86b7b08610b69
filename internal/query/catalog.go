package query

import (
	"sort"
	"strings"

	"restaurant-analytics/internal/domain"
)

func SearchRestaurants(restaurants []domain.Restaurant, criteria domain.CatalogCriteria) domain.PaginationResult[domain.Restaurant] {
	matched := Filter(restaurants,
		matchesSearch(criteria.Search),
		locationIs(criteria.Location),
		cuisineIs(criteria.Cuisine),
	)
	sortRestaurants(matched, criteria.Sort, criteria.Order)

	page, limit := normalizePaging(criteria.Page, criteria.Limit, domain.DefaultCatalogLimit)
	return Paginate(matched, page, limit)
}

func matchesSearch(term string) Predicate[domain.Restaurant] {
	if term == "" {
		return nil
	}
	return func(r domain.Restaurant) bool {
		return containsFold(r.Name, term) ||
			containsFold(r.Location, term) ||
			containsFold(r.Cuisine, term)
	}
}

func locationIs(location string) Predicate[domain.Restaurant] {
	if location == "" {
		return nil
	}
	return func(r domain.Restaurant) bool {
		return strings.EqualFold(r.Location, location)
	}
}

func cuisineIs(cuisine string) Predicate[domain.Restaurant] {
	if cuisine == "" {
		return nil
	}
	return func(r domain.Restaurant) bool {
		return strings.EqualFold(r.Cuisine, cuisine)
	}
}

func sortKey(field string) func(domain.Restaurant) string {
	switch field {
	case domain.SortByName:
		return func(r domain.Restaurant) string { return r.Name }
	case domain.SortByLocation:
		return func(r domain.Restaurant) string { return r.Location }
	case domain.SortByCuisine:
		return func(r domain.Restaurant) string { return r.Cuisine }
	}
	return nil
}

// sortRestaurants orders in place by a byte-wise comparison of the chosen
// field. Ties keep their relative order in both directions.
func sortRestaurants(restaurants []domain.Restaurant, field, order string) {
	key := sortKey(field)
	if key == nil {
		return
	}
	direction := 1
	if order == domain.OrderDesc {
		direction = -1
	}
	sort.SliceStable(restaurants, func(i, j int) bool {
		return strings.Compare(key(restaurants[i]), key(restaurants[j]))*direction < 0
	})
}

// FindRestaurant returns the first restaurant with the given id in snapshot order.
func FindRestaurant(restaurants []domain.Restaurant, id int) (domain.Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Restaurant{}, false
}

func DistinctLocations(restaurants []domain.Restaurant) []string {
	return distinct(restaurants, func(r domain.Restaurant) string { return r.Location })
}

func DistinctCuisines(restaurants []domain.Restaurant) []string {
	return distinct(restaurants, func(r domain.Restaurant) string { return r.Cuisine })
}

func distinct(restaurants []domain.Restaurant, field func(domain.Restaurant) string) []string {
	seen := make(map[string]struct{}, len(restaurants))
	values := make([]string, 0)
	for _, r := range restaurants {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

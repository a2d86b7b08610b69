package domain

const (
	DefaultPage         = 1
	DefaultCatalogLimit = 10
	DefaultOrderLimit   = 50
	DefaultRankLimit    = 3
)

// Sort fields accepted by the catalog. Anything else leaves snapshot order.
const (
	SortByName     = "name"
	SortByLocation = "location"
	SortByCuisine  = "cuisine"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// DateWindow bounds orders by calendar date, both ends inclusive. A nil end
// is unconstrained.
type DateWindow struct {
	Start *Date
	End   *Date
}

func (w DateWindow) Range() DateRange {
	var r DateRange
	if w.Start != nil {
		s := w.Start.String()
		r.StartDate = &s
	}
	if w.End != nil {
		e := w.End.String()
		r.EndDate = &e
	}
	return r
}

type CatalogCriteria struct {
	Search   string
	Location string
	Cuisine  string
	Sort     string
	Order    string
	Page     int
	Limit    int
}

type OrderCriteria struct {
	RestaurantID *int
	DateWindow
	MinAmount *float64
	MaxAmount *float64
	StartHour *int
	EndHour   *int
	Page      int
	Limit     int
}

type TrendCriteria struct {
	RestaurantID int
	DateWindow
	// Chronological sorts the daily buckets by date instead of keeping the
	// order in which dates first appear in the snapshot.
	Chronological bool
}

type RankCriteria struct {
	DateWindow
	Limit int
}

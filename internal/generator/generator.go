// Package generator builds synthetic restaurant and order collections in
// the layout served by the file and S3 sources.
package generator

import (
	"errors"
	"io"
	"math/rand"
	"sort"
	"time"

	"restaurant-analytics/internal/domain"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
)

var (
	locations = []string{"Bangalore", "Mumbai", "Delhi", "Hyderabad", "Chennai", "Pune"}
	cuisines  = []string{"North Indian", "South Indian", "Chinese", "Italian", "Japanese", "Mexican", "Continental"}
)

type Options struct {
	Restaurants int
	Orders      int
	Seed        int64
	Start       time.Time
	End         time.Time
	// Progress receives a progress bar while orders are generated. Nil
	// disables it.
	Progress io.Writer
}

func (o Options) validate() error {
	if o.Restaurants <= 0 {
		return errors.New("at least one restaurant is required")
	}
	if o.Orders < 0 {
		return errors.New("order count cannot be negative")
	}
	if !o.End.After(o.Start) {
		return errors.New("end must be after start")
	}
	return nil
}

// Generate is deterministic for a given seed. Restaurant ids start at 101
// and orders are sorted by time, as in the exported dataset.
func Generate(opts Options) (*domain.Snapshot, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	fake := faker.NewWithSeed(rand.NewSource(opts.Seed))

	restaurants := make([]domain.Restaurant, 0, opts.Restaurants)
	for i := 0; i < opts.Restaurants; i++ {
		restaurants = append(restaurants, domain.Restaurant{
			ID:       101 + i,
			Name:     fake.Company().Name(),
			Location: fake.RandomStringElement(locations),
			Cuisine:  fake.RandomStringElement(cuisines),
		})
	}

	bar := newProgressBar(opts.Progress, opts.Orders)
	orders := make([]domain.Order, 0, opts.Orders)
	for i := 0; i < opts.Orders; i++ {
		placed := fake.Time().TimeBetween(opts.Start, opts.End).Truncate(time.Minute)
		orders = append(orders, domain.Order{
			RestaurantID: restaurants[fake.IntBetween(0, len(restaurants)-1)].ID,
			OrderTime:    domain.Timestamp{Time: placed.UTC()},
			OrderAmount:  fake.Float64(2, 150, 2500),
		})
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderTime.Before(orders[j].OrderTime.Time)
	})
	return &domain.Snapshot{Restaurants: restaurants, Orders: orders}, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	if w == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating orders"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Restaurant struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
}

type Order struct {
	RestaurantID int       `json:"restaurant_id"`
	OrderTime    Timestamp `json:"order_time"`
	OrderAmount  float64   `json:"order_amount"`
}

// Snapshot is one consistent, read-only copy of the dataset. Nothing may
// modify a snapshot after it has been handed to the store.
type Snapshot struct {
	Restaurants []Restaurant `json:"restaurants"`
	Orders      []Order      `json:"orders"`
}

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

var timestampLayouts = []string{
	time.RFC3339,
	timestampLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	dateLayout,
}

// Timestamp is an order time. The date and hour are read from the wall clock
// as written in the dataset; no timezone conversion is applied.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", value)
}

func (t Timestamp) Date() Date {
	return DateOf(t.Time)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(timestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order_time must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Date is a calendar day, held as midnight UTC.
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts a plain date or any order timestamp layout; the time of
// day is discarded.
func ParseDate(value string) (Date, error) {
	ts, err := ParseTimestamp(value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q", ErrInvalidParameter, value)
	}
	return ts.Date(), nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

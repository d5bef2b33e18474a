package itinerary

import (
	"fmt"
	"strconv"
)

const (
	// DateLayout is the stored form of Entry.Date.
	DateLayout = "2006-01-02"
	// DefaultTime is assigned to every new entry.
	DefaultTime = "7:00 AM"
	// DefaultDuration is assigned to every new entry.
	DefaultDuration = "3 hours"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Entry is one planned visit.
type Entry struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Image       string       `json:"image"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Duration    string       `json:"duration"`
	Completed   bool         `json:"completed"`
}

// Candidate is what callers hand to Store.Add. Schedule fields are always
// assigned by the store.
type Candidate struct {
	Name        string
	Location    string
	Image       string
	Coordinates *Coordinates
}

func (e Entry) clone() Entry {
	if e.Coordinates != nil {
		c := *e.Coordinates
		e.Coordinates = &c
	}
	return e
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e.clone()
	}
	return out
}

// DirectionsURL returns a Google Maps driving-directions link to the entry.
// It reports false when the entry has no coordinates.
func (e Entry) DirectionsURL() (string, bool) {
	if e.Coordinates == nil {
		return "", false
	}
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s,%s&travelmode=driving",
		formatCoord(e.Coordinates.Lat), formatCoord(e.Coordinates.Lng)), true
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DayLabel is the display label for the entry at index in the itinerary.
// It comes from position only, never from Entry.Date.
func DayLabel(index int) string {
	return fmt.Sprintf("Day %d", index+1)
}

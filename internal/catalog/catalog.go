// Package catalog is the read-only list of sites and events a pilgrim can
// add to their itinerary.
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/jask/pilgrim/internal/itinerary"
)

// Site is a gurdwara or other sacred place.
type Site struct {
	ID           string
	Name         string
	Location     string
	City         string
	Province     string
	Significance string
	Distance     string
	Coordinates  itinerary.Coordinates
	Image        string
	Description  string
}

// EventType groups events for filtering.
type EventType string

const (
	Gurpurab      EventType = "gurpurab"
	Festival      EventType = "festival"
	Commemoration EventType = "commemoration"
	Celebration   EventType = "celebration"
)

// Label is the display name of t.
func (t EventType) Label() string {
	switch t {
	case Gurpurab:
		return "Gurpurab"
	case Festival:
		return "Festival"
	case Commemoration:
		return "Commemoration"
	case Celebration:
		return "Celebration"
	}
	return string(t)
}

// Event is a dated observance held at a gurdwara.
type Event struct {
	ID          string
	Title       string
	Gurdwara    string
	Location    string
	Date        string
	Time        string
	Type        EventType
	Description string
	Image       string
}

// Candidate converts the site into an itinerary candidate.
func (s Site) Candidate() itinerary.Candidate {
	c := s.Coordinates
	return itinerary.Candidate{Name: s.Name, Location: s.Location, Image: s.Image, Coordinates: &c}
}

// Candidate converts the event into an itinerary candidate. Events carry no
// coordinates.
func (e Event) Candidate() itinerary.Candidate {
	return itinerary.Candidate{Name: e.Title, Location: e.Location, Image: e.Image}
}

func stableID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

// Sites returns every site in display order.
func Sites() []Site {
	out := make([]Site, len(sites))
	copy(out, sites)
	return out
}

// Events returns every event in display order.
func Events() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// EventsByType filters events; an empty type returns them all.
func EventsByType(t EventType) []Event {
	if t == "" {
		return Events()
	}
	var out []Event
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Search finds sites whose name, location or city matches query. Substring
// matches come first; after that, sites with a word within a small edit
// distance of the query, closest first.
func Search(query string) []Site {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Sites()
	}
	type hit struct {
		site Site
		rank int
	}
	var hits []hit
	limit := len(q)/4 + 1
	for _, s := range sites {
		fields := []string{s.Name, s.Location, s.City}
		if containsAny(fields, q) {
			hits = append(hits, hit{site: s, rank: 0})
			continue
		}
		if d := closestWord(fields, q); d <= limit {
			hits = append(hits, hit{site: s, rank: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	out := make([]Site, len(hits))
	for i, h := range hits {
		out[i] = h.site
	}
	return out
}

func containsAny(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func closestWord(fields []string, q string) int {
	best := len(q) + 1
	for _, f := range fields {
		for _, w := range strings.Fields(strings.ToLower(f)) {
			if d := levenshtein.ComputeDistance(q, w); d < best {
				best = d
			}
		}
	}
	return best
}

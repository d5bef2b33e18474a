package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/pilgrim/internal/catalog"
	"github.com/jask/pilgrim/internal/itinerary"
)

// ErrAlreadyAdded is returned when a destination with the same name is already
// planned.
var ErrAlreadyAdded = errors.New("already in itinerary")

// similarDistance is the edit distance under which two names are reported as
// a possible duplicate.
const similarDistance = 3

// Planner is how the discovery and events views add to the itinerary. The
// store accepts duplicate names; Planner refuses them.
type Planner struct {
	Itinerary *itinerary.Store
}

// AddSite plans a visit to a catalog site.
func (p *Planner) AddSite(s catalog.Site) error {
	return p.add(s.Candidate())
}

// AddEvent plans attendance at a catalog event.
func (p *Planner) AddEvent(e catalog.Event) error {
	return p.add(e.Candidate())
}

func (p *Planner) add(c itinerary.Candidate) error {
	if p.Itinerary.IsInItinerary(c.Name) {
		return fmt.Errorf("%w: %s", ErrAlreadyAdded, c.Name)
	}
	p.Itinerary.Add(c)
	return nil
}

// SimilarEntries lists planned entries whose name is close to, but not
// exactly, name. Comparison ignores case.
func (p *Planner) SimilarEntries(name string) []itinerary.Entry {
	target := strings.ToLower(strings.TrimSpace(name))
	var out []itinerary.Entry
	for _, e := range p.Itinerary.Entries() {
		if e.Name == name {
			continue
		}
		if levenshtein.ComputeDistance(target, strings.ToLower(e.Name)) <= similarDistance {
			out = append(out, e)
		}
	}
	return out
}

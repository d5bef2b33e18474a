package itinerary

import (
	"fmt"
	"math"
	"strings"
)

// Progress summarises how much of the itinerary has been visited.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// Remaining is the number of entries not yet completed.
func (p Progress) Remaining() int { return p.Total - p.Completed }

func progressOf(entries []Entry) Progress {
	p := Progress{Total: len(entries)}
	for _, e := range entries {
		if e.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// ShareText renders a plain-text summary of entries suitable for pasting
// into a message.
func ShareText(entries []Entry) string {
	var b strings.Builder
	b.WriteString("My Pilgrimage Itinerary\n")
	if len(entries) == 0 {
		b.WriteString("(empty)\n")
		return b.String()
	}
	for i, e := range entries {
		mark := " "
		if e.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s: %s, %s (%s %s, %s)\n",
			mark, DayLabel(i), e.Name, e.Location, e.Date, e.Time, e.Duration)
	}
	p := progressOf(entries)
	fmt.Fprintf(&b, "%d of %d visited (%d%%)\n", p.Completed, p.Total, p.Percentage)
	return b.String()
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pilgrim/internal/catalog"
	"github.com/jask/pilgrim/internal/config"
	"github.com/jask/pilgrim/internal/itinerary"
	"github.com/jask/pilgrim/internal/service"
)

// App ties together views.
type App struct {
	ctx         context.Context
	itinerary   *itinerary.Store
	services    Services
	cfg         config.Config
	state       appState
	modal       modalState
	siteCursor  int
	eventCursor int
	itinCursor  int
	eventFilter catalog.EventType
	query       string
	inputBuffer string
	status      string
	tz          *time.Location
	dateFormat  string
}

type Services struct {
	Planner     *service.Planner
	Maintenance *service.MaintenanceService
}

type appState string

const (
	viewSites     appState = "sites"
	viewEvents    appState = "events"
	viewItinerary appState = "itinerary"
)

var viewOrder = []appState{viewSites, viewEvents, viewItinerary}

type modalState string

const (
	modalNone          modalState = ""
	modalSearch        modalState = "search"
	modalShare         modalState = "share"
	modalConfirmRemove modalState = "confirmRemove"
	modalConfirmReset  modalState = "confirmReset"
)

var eventFilters = []catalog.EventType{"", catalog.Gurpurab, catalog.Festival, catalog.Commemoration, catalog.Celebration}

func New(ctx context.Context, cfg config.Config, store *itinerary.Store, services Services, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	dateFormat := cfg.UI.DateFormat
	if dateFormat == "" {
		dateFormat = itinerary.DateLayout
	}
	return &App{
		ctx:        ctx,
		itinerary:  store,
		services:   services,
		cfg:        cfg,
		state:      viewSites,
		tz:         tz,
		dateFormat: dateFormat,
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.cycleView()
		case "g":
			a.state = viewSites
		case "e":
			a.state = viewEvents
		case "i":
			a.state = viewItinerary
		case "up", "k":
			a.moveCursor(-1)
		case "down", "j":
			a.moveCursor(1)
		case "a", "enter":
			a.addSelected()
		case "f":
			if a.state == viewEvents {
				a.cycleEventFilter()
			}
		case "/":
			if a.state == viewSites {
				a.modal = modalSearch
				a.inputBuffer = a.query
			}
		case " ", "space":
			if e, ok := a.selectedEntry(); ok {
				a.itinerary.ToggleCompletion(e.ID)
				a.status = ""
			}
		case "x":
			if _, ok := a.selectedEntry(); ok {
				a.modal = modalConfirmRemove
			}
		case "s":
			a.modal = modalShare
		case "R":
			a.modal = modalConfirmReset
		}
	case resetDoneMsg:
		a.itinCursor = 0
		a.status = "itinerary cleared"
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewEvents:
		body = a.renderEvents()
	case viewItinerary:
		body = a.renderItinerary()
	default:
		body = a.renderSites()
	}
	if a.modal != modalNone {
		body += "\n\n" + modalStyle.Render(a.renderModal())
	}
	return body
}

func (a *App) cycleView() {
	for i, v := range viewOrder {
		if v == a.state {
			a.state = viewOrder[(i+1)%len(viewOrder)]
			return
		}
	}
	a.state = viewSites
}

func (a *App) cycleEventFilter() {
	for i, f := range eventFilters {
		if f == a.eventFilter {
			a.eventFilter = eventFilters[(i+1)%len(eventFilters)]
			a.eventCursor = 0
			return
		}
	}
}

func (a *App) moveCursor(delta int) {
	var cursor *int
	var n int
	switch a.state {
	case viewSites:
		cursor, n = &a.siteCursor, len(a.sites())
	case viewEvents:
		cursor, n = &a.eventCursor, len(a.events())
	case viewItinerary:
		cursor, n = &a.itinCursor, a.itinerary.Len()
	}
	next := *cursor + delta
	if next >= 0 && next < n {
		*cursor = next
	}
}

func (a *App) sites() []catalog.Site { return catalog.Search(a.query) }

func (a *App) events() []catalog.Event { return catalog.EventsByType(a.eventFilter) }

func (a *App) selectedEntry() (itinerary.Entry, bool) {
	if a.state != viewItinerary {
		return itinerary.Entry{}, false
	}
	entries := a.itinerary.Entries()
	if a.itinCursor >= len(entries) {
		return itinerary.Entry{}, false
	}
	return entries[a.itinCursor], true
}

func (a *App) addSelected() {
	var name string
	var err error
	switch a.state {
	case viewSites:
		sites := a.sites()
		if a.siteCursor >= len(sites) {
			return
		}
		name = sites[a.siteCursor].Name
		err = a.services.Planner.AddSite(sites[a.siteCursor])
	case viewEvents:
		events := a.events()
		if a.eventCursor >= len(events) {
			return
		}
		name = events[a.eventCursor].Title
		err = a.services.Planner.AddEvent(events[a.eventCursor])
	default:
		return
	}
	switch {
	case errors.Is(err, service.ErrAlreadyAdded):
		a.status = fmt.Sprintf("%s is already in your itinerary", name)
	case err != nil:
		a.status = "error: " + err.Error()
	default:
		a.status = fmt.Sprintf("%s has been added to your itinerary", name)
		if similar := a.services.Planner.SimilarEntries(name); len(similar) > 0 {
			a.status += fmt.Sprintf(" (looks similar to %s)", similar[0].Name)
		}
	}
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalSearch:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyEnter:
			a.query = strings.TrimSpace(a.inputBuffer)
			a.siteCursor = 0
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyBackspace:
			if len(a.inputBuffer) > 0 {
				r := []rune(a.inputBuffer)
				a.inputBuffer = string(r[:len(r)-1])
			}
		case tea.KeySpace:
			a.inputBuffer += " "
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
		}
	case modalShare:
		a.modal = modalNone
	case modalConfirmRemove:
		switch m.String() {
		case "y":
			if e, ok := a.selectedEntry(); ok {
				a.itinerary.Remove(e.ID)
				a.status = fmt.Sprintf("%s removed", e.Name)
				if a.itinCursor >= a.itinerary.Len() && a.itinCursor > 0 {
					a.itinCursor--
				}
			}
			a.modal = modalNone
		case "n", "esc":
			a.modal = modalNone
		}
	case modalConfirmReset:
		switch m.String() {
		case "y":
			a.modal = modalNone
			return a, a.resetCmd()
		case "n", "esc":
			a.modal = modalNone
		}
	}
	return a, nil
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{fmt.Errorf("maintenance not configured")}
		}
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return resetDoneMsg{}
	}
}

type resetDoneMsg struct{}

type errMsg struct{ error }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	dayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF9933"))
	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const progressWidth = 20

func marker(selected bool) string {
	if selected {
		return "▶"
	}
	return " "
}

func (a *App) renderSites() string {
	title := "Sacred Sites"
	if a.query != "" {
		title += fmt.Sprintf(" (search: %s)", a.query)
	}
	out := titleStyle.Render(title) + "\n"
	sites := a.sites()
	if len(sites) == 0 {
		out += mutedStyle.Render("no matching sites") + "\n"
	}
	for i, s := range sites {
		added := ""
		if a.itinerary.IsInItinerary(s.Name) {
			added = doneStyle.Render(" ✓ planned")
		}
		out += fmt.Sprintf("%s %s %-28s %-16s %s%s\n", marker(i == a.siteCursor), s.Image, s.Name, s.Location, mutedStyle.Render(s.Distance), added)
		if i == a.siteCursor {
			out += mutedStyle.Render("    "+s.Significance+". "+s.Description) + "\n"
		}
	}
	out += "[a] Add to itinerary  [/] Search  [e] Events  [i] Itinerary  [tab] Next  [q] Quit"
	return a.withStatus(out)
}

func (a *App) renderEvents() string {
	title := "Events"
	if a.eventFilter != "" {
		title += " - " + a.eventFilter.Label()
	}
	out := titleStyle.Render(title) + "\n"
	events := a.events()
	if len(events) == 0 {
		out += mutedStyle.Render("no events of this type") + "\n"
	}
	for i, e := range events {
		added := ""
		if a.itinerary.IsInItinerary(e.Title) {
			added = doneStyle.Render(" ✓ planned")
		}
		out += fmt.Sprintf("%s %s %-36s %-14s %s %s%s\n", marker(i == a.eventCursor), e.Image, e.Title, e.Type.Label(), a.formatDate(e.Date), mutedStyle.Render(e.Time), added)
	}
	out += "[a] Add to itinerary  [f] Filter type  [g] Sites  [i] Itinerary  [tab] Next  [q] Quit"
	return a.withStatus(out)
}

func (a *App) renderItinerary() string {
	out := titleStyle.Render("My Pilgrimage Itinerary") + "\n"
	entries := a.itinerary.Entries()
	if len(entries) == 0 {
		out += mutedStyle.Render("Your itinerary is empty. Add sites or events to start planning.") + "\n"
		out += "[g] Sites  [e] Events  [tab] Next  [q] Quit"
		return a.withStatus(out)
	}

	p := a.itinerary.GetProgress()
	out += fmt.Sprintf("Completed %d  Remaining %d  Progress %d%%\n", p.Completed, p.Remaining(), p.Percentage)
	out += progressBar(p.Percentage) + "\n"
	out += fmt.Sprintf("Total locations %d  Duration %d days\n\n", p.Total, len(entries))

	for i, e := range entries {
		check := "[ ]"
		name := e.Name
		if e.Completed {
			check = doneStyle.Render("[✓]")
			name = lipgloss.NewStyle().Strikethrough(true).Render(name)
		}
		out += fmt.Sprintf("%s %s %s %s %s  📍 %s\n", marker(i == a.itinCursor), dayStyle.Render(itinerary.DayLabel(i)), check, e.Image, name, e.Location)
		out += mutedStyle.Render(fmt.Sprintf("      %s  %s • %s", a.formatDate(e.Date), e.Time, e.Duration)) + "\n"
		if i == a.itinCursor {
			if u, ok := e.DirectionsURL(); ok {
				out += mutedStyle.Render("      directions: "+u) + "\n"
			} else {
				out += mutedStyle.Render("      location coordinates not available") + "\n"
			}
		}
	}
	out += "[space] Toggle visited  [x] Remove  [s] Share  [R] Reset  [g] Sites  [e] Events  [q] Quit"
	return a.withStatus(out)
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalSearch:
		return titleStyle.Render("Search sites") + fmt.Sprintf("\n%s\n[enter] Search  [esc] Cancel", a.inputBuffer)
	case modalShare:
		return titleStyle.Render("Share Itinerary") + "\n" + itinerary.ShareText(a.itinerary.Entries()) + "[any key] Close"
	case modalConfirmRemove:
		return titleStyle.Render("Remove from Itinerary") + "\nAre you sure you want to remove this location from your itinerary?\n[y] Remove  [n] Cancel"
	case modalConfirmReset:
		return titleStyle.Render("Clear itinerary?") + "\nThis will remove every planned visit.\n[y] Yes  [n] No"
	default:
		return ""
	}
}

func (a *App) withStatus(out string) string {
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

// formatDate renders a stored YYYY-MM-DD date with the configured layout.
func (a *App) formatDate(date string) string {
	t, err := time.ParseInLocation(itinerary.DateLayout, date, a.tz)
	if err != nil {
		return date
	}
	return t.Format(a.dateFormat)
}

func progressBar(pct int) string {
	filled := pct * progressWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
	if pct == 100 {
		return doneStyle.Render(bar)
	}
	return bar
}

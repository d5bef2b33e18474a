package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/pilgrim/internal/catalog"
	"github.com/jask/pilgrim/internal/database"
	"github.com/jask/pilgrim/internal/database/repository"
	"github.com/jask/pilgrim/internal/itinerary"
)

var testNow = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

func openStore(t *testing.T, slot itinerary.Slot) *itinerary.Store {
	t.Helper()
	s := itinerary.New(context.Background(), slot,
		itinerary.WithClock(func() time.Time { return testNow }),
		itinerary.WithLocation(time.UTC),
		itinerary.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Close(ctx)
	})
	return s
}

func setupPlannerTest(t *testing.T) (*Planner, *repository.BoundSlot, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot := repository.NewSlotRepo(db).Bind("itinerary")
	return &Planner{Itinerary: openStore(t, slot)}, slot, ctx
}

func TestPlannerAddSiteRejectsDuplicates(t *testing.T) {
	t.Parallel()
	p, _, _ := setupPlannerTest(t)
	site := catalog.Sites()[0]

	require.NoError(t, p.AddSite(site))
	err := p.AddSite(site)
	require.ErrorIs(t, err, ErrAlreadyAdded)
	require.ErrorContains(t, err, site.Name)
	require.Equal(t, 1, p.Itinerary.Len())

	e := p.Itinerary.Entries()[0]
	require.Equal(t, site.Name, e.Name)
	require.Equal(t, site.Location, e.Location)
	require.Equal(t, site.Image, e.Image)
	require.Equal(t, &site.Coordinates, e.Coordinates)
}

func TestPlannerAddEventHasNoCoordinates(t *testing.T) {
	t.Parallel()
	p, _, _ := setupPlannerTest(t)

	require.NoError(t, p.AddSite(catalog.Sites()[0]))
	require.NoError(t, p.AddEvent(catalog.Events()[1]))
	require.ErrorIs(t, p.AddEvent(catalog.Events()[1]), ErrAlreadyAdded)

	ev := p.Itinerary.Entries()[1]
	require.Equal(t, "Baisakhi Celebration", ev.Name)
	require.Nil(t, ev.Coordinates)
	require.Equal(t, "2026-10-19", ev.Date)
	_, ok := ev.DirectionsURL()
	require.False(t, ok)
}

func TestPlannerPersistsThroughSQLite(t *testing.T) {
	t.Parallel()
	p, slot, ctx := setupPlannerTest(t)

	for _, s := range catalog.Sites()[:3] {
		require.NoError(t, p.AddSite(s))
	}
	p.Itinerary.ToggleCompletion(p.Itinerary.Entries()[1].ID)
	require.NoError(t, p.Itinerary.Flush(ctx))

	reopened := openStore(t, slot)
	require.Equal(t, p.Itinerary.Entries(), reopened.Entries())
	require.Equal(t, itinerary.Progress{Completed: 1, Total: 3, Percentage: 33}, reopened.GetProgress())
}

func TestSimilarEntries(t *testing.T) {
	t.Parallel()
	p, _, _ := setupPlannerTest(t)
	require.NoError(t, p.AddSite(catalog.Sites()[1])) // Gurdwara Panja Sahib

	similar := p.SimilarEntries("gurdwara panja sahb")
	require.Len(t, similar, 1)
	require.Equal(t, "Gurdwara Panja Sahib", similar[0].Name)

	require.Empty(t, p.SimilarEntries("Gurdwara Panja Sahib"))
	require.Empty(t, p.SimilarEntries("Gurdwara Rohri Sahib"))
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()
	p, slot, ctx := setupPlannerTest(t)
	for _, s := range catalog.Sites() {
		require.NoError(t, p.AddSite(s))
	}

	m := &MaintenanceService{Itinerary: p.Itinerary}
	require.NoError(t, m.Reset(ctx))
	require.Equal(t, 0, p.Itinerary.Len())

	data, err := slot.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}

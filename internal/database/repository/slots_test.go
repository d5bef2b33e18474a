package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/pilgrim/internal/database"
)

func setupSlotTest(t *testing.T) (*SlotRepo, *sql.DB, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrationsWithDB(db, migrations))

	return NewSlotRepo(db), db, ctx
}

func TestSlotGetMissingReturnsNil(t *testing.T) {
	t.Parallel()
	repo, _, ctx := setupSlotTest(t)

	s, err := repo.Get(ctx, "itinerary")
	require.NoError(t, err)
	require.Nil(t, s)

	data, err := repo.Bind("itinerary").Load(ctx)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestSlotPutOverwritesAndBumpsVersion(t *testing.T) {
	t.Parallel()
	repo, db, ctx := setupSlotTest(t)

	require.NoError(t, repo.Put(ctx, "itinerary", []byte(`[]`)))
	require.NoError(t, repo.Put(ctx, "itinerary", []byte(`[{"id":1}]`)))

	s, err := repo.Get(ctx, "itinerary")
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "itinerary", s.Key)
	require.Equal(t, []byte(`[{"id":1}]`), s.Value)
	require.Equal(t, int64(2), s.Version)
	require.False(t, s.UpdatedAt.IsZero())

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv_slots").Scan(&count))
	require.Equal(t, 1, count)
}

func TestBoundSlotRoundTrip(t *testing.T) {
	t.Parallel()
	repo, _, ctx := setupSlotTest(t)

	a := repo.Bind("a")
	b := repo.Bind("b")
	require.Equal(t, "a", a.Key())
	require.NoError(t, a.Save(ctx, []byte("first")))
	require.NoError(t, b.Save(ctx, nil))

	got, err := a.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("first"), got)

	got, err = b.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "a", list[0].Key)
	require.Nil(t, list[0].Value)

	require.NoError(t, repo.Delete(ctx, "a"))
	got, err = a.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

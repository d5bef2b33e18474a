package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSlotMissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "nested", "itinerary.json"))
	require.NoError(t, err)

	data, err := slot.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestFileSlotSaveReplacesWholeValue(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "itinerary.json")
	slot, err := NewFileSlot(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, slot.Save(ctx, []byte(`[{"id":1},{"id":2}]`)))
	require.NoError(t, slot.Save(ctx, []byte(`[]`)))

	data, err := slot.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSlotHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "itinerary.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, slot.Save(ctx, []byte(`[]`)), context.Canceled)
	_, err = slot.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultSlotPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	p, err := DefaultSlotPath("itinerary")
	require.NoError(t, err)
	require.Equal(t, "itinerary.json", filepath.Base(p))
	require.Equal(t, appDir, filepath.Base(filepath.Dir(p)))
}

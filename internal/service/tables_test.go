package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

func intPtr(n int) *int { return &n }

func newTable(t *testing.T, tables *Tables, restaurantID string, number int) model.Table {
	t.Helper()
	table, err := tables.Save(context.Background(), model.TablePatch{
		RestaurantID: &restaurantID,
		Number:       intPtr(number),
		Capacity:     intPtr(4),
	})
	require.NoError(t, err)
	return table
}

func TestTablesDefaultAvailable(t *testing.T) {
	tables := NewTables(storage.NewMemory())
	table := newTable(t, tables, "r1", 1)
	assert.True(t, table.IsAvailable)
}

func TestTablesSaveUnknownIDInserts(t *testing.T) {
	tables := NewTables(storage.NewMemory())
	ctx := context.Background()

	// Saving with an identifier nothing matches inserts the record under
	// that identifier instead of failing.
	table, err := tables.Save(ctx, model.TablePatch{
		ID:           "imported-7",
		RestaurantID: strPtr("r1"),
		Number:       intPtr(7),
		Capacity:     intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "imported-7", table.ID)
	assert.False(t, table.CreatedAt.IsZero())

	got, ok, err := tables.ByID(ctx, "imported-7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, table, got)
}

func TestTablesUpdateAvailability(t *testing.T) {
	tables := NewTables(storage.NewMemory())
	ctx := context.Background()
	table := newTable(t, tables, "r1", 1)

	updated, err := tables.UpdateAvailability(ctx, table.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, table.Number, updated.Number)

	// Unlike Save, availability updates never insert.
	_, err = tables.UpdateAvailability(ctx, "nope", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTablesByRestaurant(t *testing.T) {
	tables := NewTables(storage.NewMemory())
	newTable(t, tables, "r1", 1)
	newTable(t, tables, "r2", 1)
	newTable(t, tables, "r1", 2)

	got, err := tables.ByRestaurant(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, table := range got {
		assert.Equal(t, "r1", table.RestaurantID)
	}
}

package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a complete record", func(t *testing.T) {
		app, mock, employee := setupTestApp()

		err := NewAddCommand(app).Execute(ctx, []string{"2026-01-15", "09:00:00", "17:00:00"})
		require.NoError(t, err)

		record, err := mock.GetRecord(ctx, employee.ID, "2026-01-15")
		require.NoError(t, err)
		assert.Equal(t, "09:00:00", *record.StartTime)
		assert.Equal(t, "17:00:00", *record.EndTime)
	})

	t.Run("adds a record without end time", func(t *testing.T) {
		app, mock, employee := setupTestApp()

		err := NewAddCommand(app).Execute(ctx, []string{"2026-01-15", "09:00:00"})
		require.NoError(t, err)

		record, err := mock.GetRecord(ctx, employee.ID, "2026-01-15")
		require.NoError(t, err)
		assert.Nil(t, record.EndTime)
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		app, _, _ := setupTestApp()

		assert.Error(t, NewAddCommand(app).Execute(ctx, []string{"2026-01-15"}))
		assert.Error(t, NewAddCommand(app).Execute(ctx, []string{"a", "b", "c", "d"}))
	})
}

func TestEditCommand_Execute(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*App, *mockAPI, string) {
		app, mock, employee := setupTestApp()
		require.NoError(t, NewAddCommand(app).Execute(ctx, []string{"2026-01-15", "09:00:00", "17:00:00"}))
		return app, mock, employee.ID
	}

	t.Run("sets the end time", func(t *testing.T) {
		app, mock, employeeID := seed(t)

		err := NewEditCommand(app).Execute(ctx, []string{"2026-01-15", "end=18:00:00"})
		require.NoError(t, err)

		record, err := mock.GetRecord(ctx, employeeID, "2026-01-15")
		require.NoError(t, err)
		assert.Equal(t, "18:00:00", *record.EndTime)
		assert.Equal(t, "09:00:00", *record.StartTime)
	})

	t.Run("clears a field with dash", func(t *testing.T) {
		app, mock, employeeID := seed(t)

		err := NewEditCommand(app).Execute(ctx, []string{"2026-01-15", "end=-"})
		require.NoError(t, err)

		record, err := mock.GetRecord(ctx, employeeID, "2026-01-15")
		require.NoError(t, err)
		assert.Nil(t, record.EndTime)
	})

	t.Run("rejects malformed field syntax", func(t *testing.T) {
		app, _, _ := seed(t)

		err := NewEditCommand(app).Execute(ctx, []string{"2026-01-15", "end"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key=value")
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		app, _, _ := seed(t)

		err := NewEditCommand(app).Execute(ctx, []string{"2026-01-15", "lunch=12:00:00"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field")
	})

	t.Run("rejects missing arguments", func(t *testing.T) {
		app, _, _ := seed(t)
		assert.Error(t, NewEditCommand(app).Execute(ctx, []string{"2026-01-15"}))
	})
}

package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	gdb, err := Init(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	slot := NewSQLiteSlot(gdb)

	_, ok, err := slot.Get("hostel-user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Put("hostel-user", `{"id":"student1"}`))

	v, ok, err := slot.Get("hostel-user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"student1"}`, v)

	// Put overwrites the single slot.
	require.NoError(t, slot.Put("hostel-user", `{"id":"admin1"}`))
	v, ok, err = slot.Get("hostel-user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"admin1"}`, v)

	require.NoError(t, slot.Delete("hostel-user"))
	_, ok, err = slot.Get("hostel-user")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, slot.Delete("hostel-user"))
}

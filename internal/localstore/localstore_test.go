package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyAthleteSearch)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyAthleteSearch, "alice"))
	v, ok, err := s.Get(ctx, KeyAthleteSearch)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	// Overwrite.
	require.NoError(t, s.Set(ctx, KeyAthleteSearch, "bob"))
	v, _, err = s.Get(ctx, KeyAthleteSearch)
	require.NoError(t, err)
	assert.Equal(t, "bob", v)

	require.NoError(t, s.Delete(ctx, KeyAthleteSearch))
	_, ok, err = s.Get(ctx, KeyAthleteSearch)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is fine.
	require.NoError(t, s.Delete(ctx, KeyAthleteSearch))
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	v, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

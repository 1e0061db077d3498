package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	defer s.Close(ctx)

	_, err = s.Read(ctx, 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	require.NoError(t, s.Write(ctx, 1, []byte("first")))
	data, err := s.Read(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	require.NoError(t, s.Write(ctx, 1, []byte("second")))
	data, err = s.Read(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	_, err = s.Read(ctx, 2)
	assert.True(t, IsNotFound(err))
}

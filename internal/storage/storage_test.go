package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/azgaming/storefront/internal/errors"
)

func TestStoreContract(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{
			name: "memory",
			store: func(t *testing.T) Store {
				return NewMemStore()
			},
		},
		{
			name: "file",
			store: func(t *testing.T) Store {
				s, err := NewFileStore(t.TempDir())
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "sqlite",
			store: func(t *testing.T) Store {
				s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "blobs.db"))
				require.NoError(t, err)
				return s
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.store(t)

			_, err := s.Get("azgaming-cart")
			assert.ErrorIs(t, err, inErrors.ErrNoItem)

			require.NoError(t, s.Set("azgaming-cart", []byte(`[{"id":"ps4-001"}]`)))
			got, err := s.Get("azgaming-cart")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"ps4-001"}]`, string(got))

			// last write wins
			require.NoError(t, s.Set("azgaming-cart", []byte(`[]`)))
			got, err = s.Get("azgaming-cart")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, s.Remove("azgaming-cart"))
			_, err = s.Get("azgaming-cart")
			assert.ErrorIs(t, err, inErrors.ErrNoItem)

			// removing an absent key is not an error
			assert.NoError(t, s.Remove("azgaming-cart"))
		})
	}
}

func TestFileStoreKeysAreIsolated(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("azgaming-cart", []byte("a")))
	require.NoError(t, s.Set("azgaming-settings", []byte("b")))
	require.NoError(t, s.Remove("azgaming-cart"))

	got, err := s.Get("azgaming-settings")
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}

func TestFileStoreReopens(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("azgaming-admin-data", []byte(`{"products":[]}`)))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get("azgaming-admin-data")
	require.NoError(t, err)
	assert.Equal(t, `{"products":[]}`, string(got))
}

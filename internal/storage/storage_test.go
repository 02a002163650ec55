package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Backend = (*Dir)(nil)
	_ Backend = (*Badger)(nil)
	_ Backend = (*SQLite)(nil)
	_ Backend = (*Memory)(nil)
)

// backends returns one fresh instance of every backend
func backends(t *testing.T) map[string]Backend {
	t.Helper()

	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)

	bdg, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	require.NoError(t, err)

	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	all := map[string]Backend{
		"dir":    dir,
		"badger": bdg,
		"sqlite": sq,
		"memory": NewMemory(),
	}
	t.Cleanup(func() {
		for _, b := range all {
			b.Close()
		}
	})
	return all
}

func TestBackend_GetPut(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get(KeyEvents)
			assert.ErrorIs(t, err, ErrNotExist)

			require.NoError(t, b.Put(KeyEvents, []byte(`[{"id":1}]`)))
			got, err := b.Get(KeyEvents)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":1}]`, string(got))

			require.NoError(t, b.Put(KeyEvents, []byte(`[]`)))
			got, err = b.Get(KeyEvents)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got), "put overwrites the whole value")

			_, err = b.Get(KeyLibraries)
			assert.ErrorIs(t, err, ErrNotExist, "keys are independent")
		})
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	value := []byte("abc")
	require.NoError(t, m.Put("k", value))
	value[0] = 'z'

	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, _ := m.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestDir_FileLayout(t *testing.T) {
	root := t.TempDir()
	d, err := NewDir(filepath.Join(root, "nested", "data"))
	require.NoError(t, err)

	require.NoError(t, d.Put(KeyLibraries, []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(root, "nested", "data", "libraries.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	leftovers, err := filepath.Glob(filepath.Join(root, "nested", "data", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestBadger_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badger")

	b, err := OpenBadger(path)
	require.NoError(t, err)
	require.NoError(t, b.Put(KeyEvents, []byte(`[{"id":7}]`)))
	require.NoError(t, b.Close())

	b, err = OpenBadger(path)
	require.NoError(t, err)
	defer b.Close()

	got, err := b.Get(KeyEvents)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":7}]`, string(got))
}

func TestOpen(t *testing.T) {
	for _, kind := range []Kind{KindFile, KindBadger, KindSQLite, KindMemory} {
		t.Run(string(kind), func(t *testing.T) {
			b, err := Open(kind, t.TempDir())
			require.NoError(t, err)
			require.NoError(t, b.Put("k", []byte("v")))
			require.NoError(t, b.Close())
		})
	}

	_, err := Open("postgres", t.TempDir())
	assert.Error(t, err)
}

package memory

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Success(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("key1", "value1")
	require.NoError(t, err)

	assert.Equal(t, "value1", store.GetString("key1"))
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key1", "original"))
	require.NoError(t, store.Set("key1", "updated"))

	assert.Equal(t, "updated", store.GetString("key1"))
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Equal(t, "", store.GetString("num"), "non-string returns empty")
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("int", 42))
	require.NoError(t, store.Set("int64", int64(43)))
	require.NoError(t, store.Set("float", 44.9))
	require.NoError(t, store.Set("str", "nope"))

	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 43, store.GetInt("int64"))
	assert.Equal(t, 44, store.GetInt("float"), "floats truncate")
	assert.Equal(t, 0, store.GetInt("str"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("yes", true))
	require.NoError(t, store.Set("no", false))
	require.NoError(t, store.Set("str", "true"))

	assert.True(t, store.GetBool("yes"))
	assert.False(t, store.GetBool("no"))
	assert.False(t, store.GetBool("str"), "string is not coerced")
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("strings", []string{"a", "b"}))
	require.NoError(t, store.Set("mixed", []any{"c", 1, "d"}))
	require.NoError(t, store.Set("scalar", "e"))

	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("strings"))
	assert.Equal(t, []string{"c", "d"}, store.GetStringSlice("mixed"), "non-strings are dropped")
	assert.Nil(t, store.GetStringSlice("scalar"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_SaveLoad_NoOps(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	// Values survive the no-op round trip
	assert.Equal(t, "value", store.GetString("key"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines * 2)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_ = store.Set("key-"+strconv.Itoa(id), id)
		}(i)
		go func(id int) {
			defer wg.Done()
			_ = store.GetInt("key-" + strconv.Itoa(id))
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock; all writes visible
	for i := 0; i < numGoroutines; i++ {
		assert.Equal(t, i, store.GetInt("key-"+strconv.Itoa(i)))
	}
}

package kv

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 两个后端跑同一套契约测试，保证可互换
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client, "lantern"),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("get absent key", func(t *testing.T) {
				_, ok, err := store.Get(ctx, "ramadhan_profile")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("set then get", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "ramadhan_dark", "1"))

				value, ok, err := store.Get(ctx, "ramadhan_dark")
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "1", value)
			})

			t.Run("set overwrites", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "ramadhan_dark", "1"))
				require.NoError(t, store.Set(ctx, "ramadhan_dark", "0"))

				value, _, err := store.Get(ctx, "ramadhan_dark")
				require.NoError(t, err)
				assert.Equal(t, "0", value)
			})

			t.Run("remove", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "ramadhan_global_note", "sahur jam 4"))
				require.NoError(t, store.Remove(ctx, "ramadhan_global_note"))

				_, ok, err := store.Get(ctx, "ramadhan_global_note")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("remove absent key is a no-op", func(t *testing.T) {
				assert.NoError(t, store.Remove(ctx, "never_set"))
			})

			t.Run("keys by prefix", func(t *testing.T) {
				require.NoError(t, store.Clear(ctx))
				require.NoError(t, store.Set(ctx, "ramadhan_day_2026-02-19", "{}"))
				require.NoError(t, store.Set(ctx, "ramadhan_day_2026-02-20", "{}"))
				require.NoError(t, store.Set(ctx, "ramadhan_start_date", "2026-02-19"))

				keys, err := store.Keys(ctx, "ramadhan_day_")
				require.NoError(t, err)
				sort.Strings(keys)
				assert.Equal(t, []string{"ramadhan_day_2026-02-19", "ramadhan_day_2026-02-20"}, keys)
			})

			t.Run("clear removes everything", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "ramadhan_city", "Bandung"))
				require.NoError(t, store.Clear(ctx))

				keys, err := store.Keys(ctx, "")
				require.NoError(t, err)
				assert.Empty(t, keys)
			})
		})
	}
}

func TestRedisStoreNamespacing(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "lantern")
	require.NoError(t, store.Set(ctx, "ramadhan_city", "Jakarta"))

	// 实际 Redis key 带命名空间前缀
	value, err := mr.Get("lantern:ramadhan_city")
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", value)

	// Clear 不碰命名空间之外的 key
	mr.Set("other:key", "keep")
	require.NoError(t, store.Clear(ctx))
	assert.True(t, mr.Exists("other:key"))
	assert.False(t, mr.Exists("lantern:ramadhan_city"))
}

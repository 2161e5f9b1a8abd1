package cache

// Тесты внутрипроцессного кэша (internal/cache).
//
// Проверяем:
//   - попадание в пределах TTL и промах после истечения (часы внедряются);
//   - ленивую эвикцию просроченной записи при чтении;
//   - перезапись значения по тому же ключу;
//   - различимость структурных ключей (разные фильтры -> разные записи);
//   - LRU-границу: вытесняется давно не использованный ключ;
//   - Purge.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock — управляемые часы для проверки TTL.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1700000000, 0)} }

func TestMemory_HitWithinTTL(t *testing.T) {
	t.Parallel()

	clk := newFakeClock()
	m := NewWithNow(time.Minute, 0, clk.Now)

	key := Key{Op: "list", Sort: "latest", Limit: 6}
	m.Set(key, "page-1")

	clk.Advance(59 * time.Second)
	got, ok := m.Get(key)
	require.True(t, ok)
	require.Equal(t, "page-1", got)
}

func TestMemory_MissAfterTTL(t *testing.T) {
	t.Parallel()

	clk := newFakeClock()
	m := NewWithNow(time.Minute, 0, clk.Now)

	key := Key{Op: "list", Sort: "latest", Limit: 6}
	m.Set(key, "page-1")

	clk.Advance(time.Minute)
	_, ok := m.Get(key)
	require.False(t, ok)

	// Просроченная запись эвикчена при чтении, а не висит в памяти.
	require.Equal(t, 0, m.Len())
}

func TestMemory_SetOverwrites(t *testing.T) {
	t.Parallel()

	clk := newFakeClock()
	m := NewWithNow(time.Minute, 0, clk.Now)

	key := Key{Op: "counts"}
	m.Set(key, 1)
	m.Set(key, 2)

	got, ok := m.Get(key)
	require.True(t, ok)
	require.Equal(t, 2, got)
	require.Equal(t, 1, m.Len())
}

func TestMemory_KeysAreDistinct(t *testing.T) {
	t.Parallel()

	m := New(time.Minute, 0)

	m.Set(Key{Op: "list", Sort: "latest", Category: "AI", Limit: 6}, "ai")
	m.Set(Key{Op: "list", Sort: "latest", Category: "Fashion", Limit: 6}, "fashion")
	m.Set(Key{Op: "list", Sort: "popular", Category: "AI", Limit: 6}, "ai-popular")

	got, ok := m.Get(Key{Op: "list", Sort: "latest", Category: "AI", Limit: 6})
	require.True(t, ok)
	require.Equal(t, "ai", got)

	_, ok = m.Get(Key{Op: "list", Sort: "latest", Category: "AI", Limit: 12})
	require.False(t, ok)
}

func TestMemory_LRUBound(t *testing.T) {
	t.Parallel()

	clk := newFakeClock()
	m := NewWithNow(time.Minute, 2, clk.Now)

	a := Key{Op: "list", Cursor: "a"}
	b := Key{Op: "list", Cursor: "b"}
	c := Key{Op: "list", Cursor: "c"}

	m.Set(a, "a")
	m.Set(b, "b")

	// Трогаем a — теперь наименее свежий ключ это b.
	_, ok := m.Get(a)
	require.True(t, ok)

	m.Set(c, "c")
	require.Equal(t, 2, m.Len())

	_, ok = m.Get(b)
	require.False(t, ok)
	_, ok = m.Get(a)
	require.True(t, ok)
	_, ok = m.Get(c)
	require.True(t, ok)
}

func TestMemory_Purge(t *testing.T) {
	t.Parallel()

	m := New(time.Minute, 0)
	m.Set(Key{Op: "list"}, "x")
	m.Purge()

	_, ok := m.Get(Key{Op: "list"})
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

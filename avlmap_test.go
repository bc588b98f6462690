package avlmap

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry[K, V any] struct {
	k K
	v V
}

func makeSample() *Map[int, string] {
	m := New[int, string]()
	m.Insert(4, "four")
	m.Insert(1, "one")
	m.Insert(9, "nine")
	m.Insert(2, "two")
	m.Insert(6, "six")
	m.Insert(7, "seven")
	return m
}

var sample = []entry[int, string]{
	{1, "one"}, {2, "two"}, {4, "four"}, {6, "six"}, {7, "seven"}, {9, "nine"},
}

func TestIter(t *testing.T) {
	m := makeSample()
	var got []entry[int, string]
	it := m.Iter()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		got = append(got, entry[int, string]{k, v})
	}
	require.Equal(t, sample, got)

	// Shared iteration leaves the map intact and can be restarted.
	first := m.Iter()
	k, v, ok := first.Next()
	require.True(t, ok)
	require.Equal(t, 1, k)
	require.Equal(t, "one", v)
	require.Equal(t, 6, m.Len())
}

func TestReverseIter(t *testing.T) {
	m := makeSample()
	var got []entry[int, string]
	it := m.Drain()
	for k, v, ok := it.NextBack(); ok; k, v, ok = it.NextBack() {
		got = append(got, entry[int, string]{k, v})
	}
	require.Equal(t, []entry[int, string]{
		{9, "nine"}, {7, "seven"}, {6, "six"}, {4, "four"}, {2, "two"}, {1, "one"},
	}, got)
	require.Equal(t, 0, m.Len())
}

func TestDrain(t *testing.T) {
	m := makeSample()
	it := m.Drain()
	require.Equal(t, 6, it.Len())
	require.Equal(t, 0, m.Len())
	var got []entry[int, string]
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		got = append(got, entry[int, string]{k, v})
	}
	require.Equal(t, sample, got)
	require.Equal(t, 0, it.Len())
	_, found := m.Get(1)
	require.False(t, found)
	require.NoError(t, m.Check())
}

func TestIterMut(t *testing.T) {
	m := makeSample()
	it := m.IterMut()
	for _, v, ok := it.Next(); ok; _, v, ok = it.Next() {
		*v += "_plus"
	}
	var got []entry[int, string]
	d := m.Drain()
	for k, v, ok := d.Next(); ok; k, v, ok = d.Next() {
		got = append(got, entry[int, string]{k, v})
	}
	want := make([]entry[int, string], len(sample))
	for i, e := range sample {
		want[i] = entry[int, string]{e.k, e.v + "_plus"}
	}
	require.Equal(t, want, got)
}

func TestIterMutBackward(t *testing.T) {
	m := makeSample()
	it := m.IterMut()
	require.Equal(t, 6, it.Len())
	k, v, ok := it.NextBack()
	require.True(t, ok)
	require.Equal(t, 9, k)
	*v = "NINE"
	require.Equal(t, 5, it.Len())
	got, _ := m.Get(9)
	require.Equal(t, "NINE", got)
}

func TestGet(t *testing.T) {
	m := New[int, string]()
	m.Insert(4, "four")
	m.Insert(1, "one")
	m.Insert(9, "nine")
	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)
	_, ok = m.Get(5)
	require.False(t, ok)
}

func TestGetMut(t *testing.T) {
	m := New[int, string]()
	m.Insert(4, "four")
	m.Insert(1, "one")
	m.Insert(9, "nine")
	p, ok := m.GetMut(4)
	require.True(t, ok)
	*p += "_plus"
	v, _ := m.Get(4)
	require.Equal(t, "four_plus", v)
	p, ok = m.GetMut(5)
	require.False(t, ok)
	require.Nil(t, p)

	var got []entry[int, string]
	for k, v := range m.All() {
		got = append(got, entry[int, string]{k, v})
	}
	require.Equal(t, []entry[int, string]{
		{1, "one"}, {4, "four_plus"}, {9, "nine"},
	}, got)
}

func TestInsertReplace(t *testing.T) {
	m := New[string, int]()
	old, replaced := m.Insert("a", 1)
	assert.False(t, replaced)
	assert.Zero(t, old)
	assert.Equal(t, 1, m.Len())

	old, replaced = m.Insert("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)
	assert.Equal(t, 1, m.Len())
	v, _ := m.Get("a")
	assert.Equal(t, 2, v)
}

func TestRemove(t *testing.T) {
	m := makeSample()
	require.False(t, m.Remove(3))
	require.Equal(t, 6, m.Len())
	require.True(t, m.Remove(4))
	require.Equal(t, 5, m.Len())
	require.False(t, m.Remove(4))
	require.Equal(t, 5, m.Len())

	v, ok := m.Pop(9)
	require.True(t, ok)
	require.Equal(t, "nine", v)
	require.Equal(t, 4, m.Len())
	_, ok = m.Pop(9)
	require.False(t, ok)
	require.Equal(t, 4, m.Len())

	empty := New[int, int]()
	require.False(t, empty.Remove(1))
	_, ok = empty.Pop(1)
	require.False(t, ok)
	require.Equal(t, 0, empty.Len())
	require.NoError(t, m.Check())
}

func TestInsertRemoveAll(t *testing.T) {
	t.Parallel()
	const N = 2000
	m := New[int, struct{}](WithCapacity(N))
	for _, k := range rand.Perm(N) {
		_, replaced := m.Insert(k, struct{}{})
		require.False(t, replaced)
	}
	require.Equal(t, N, m.Len())
	require.NoError(t, m.Check())
	// An AVL tree of N nodes is at most ~1.44 log2(N) high.
	require.LessOrEqual(t, m.Height(), 16)

	prev := -1
	for k := range m.All() {
		require.Greater(t, k, prev)
		prev = k
	}
	for _, k := range rand.Perm(N) {
		require.True(t, m.Remove(k))
	}
	require.Equal(t, 0, m.Len())
	require.Equal(t, 0, m.Height())
	require.NoError(t, m.Check())
}

func TestBackward(t *testing.T) {
	m := makeSample()
	var keys []int
	for k := range m.Backward() {
		keys = append(keys, k)
		if k == 4 {
			break
		}
	}
	require.Equal(t, []int{9, 7, 6, 4}, keys)
}

func TestCustomOrder(t *testing.T) {
	m := MakeMap[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	m.Insert("b", 1)
	m.Insert("A", 2)
	m.Insert("B", 3)
	require.Equal(t, 2, m.Len())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"A", "B"}, keys)
}

func TestCloneReset(t *testing.T) {
	m := makeSample()
	c := m.Clone()
	m.Reset()
	require.Equal(t, 0, m.Len())
	require.Equal(t, 6, c.Len())
	require.Equal(t, "(1:one(2:two))4:four((6:six)7:seven(9:nine))", c.String())
	require.Equal(t, ";", m.String())
}

func TestPrint(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "one")
	var b strings.Builder
	require.NoError(t, m.Print(&b))
	require.Equal(t, "|------+ 1 → one [1]\n", b.String())
}

func benchmarkInsertRemove(b *testing.B, n int) {
	keys := rand.Perm(n)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := New[int, struct{}]()
		for _, k := range keys {
			m.Insert(k, struct{}{})
		}
		for _, k := range keys {
			m.Remove(k)
		}
		if m.Len() != 0 {
			b.Fatalf("expected empty map, got %d", m.Len())
		}
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	for _, n := range []int{1, 16, 256, 4096, 65536} {
		b.Run(strconv.Itoa(n), func(b *testing.B) { benchmarkInsertRemove(b, n) })
	}
}

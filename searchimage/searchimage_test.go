package searchimage

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	x, y int
}

func backends(t *testing.T) map[string]SearchImage[*node] {
	t.Helper()
	return map[string]SearchImage[*node]{
		"Map":   NewMap[*node](),
		"Array": NewArray[*node](32, 32),
		"Table": NewTable[*node](),
	}
}

func TestBackendsStoreAndRetrieve(t *testing.T) {
	for name, si := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, si.Value(3, 7))

			n := &node{x: 3, y: 7}
			si.SetValue(3, 7, n)
			assert.Same(t, n, si.Value(3, 7))
			assert.Nil(t, si.Value(7, 3))

			// Overwrite replaces, never merges.
			m := &node{x: 3, y: 7}
			si.SetValue(3, 7, m)
			assert.Same(t, m, si.Value(3, 7))
		})
	}
}

func TestBackendsEachVisitsEveryStoredValue(t *testing.T) {
	coords := [][2]int{{0, 0}, {31, 31}, {5, 5}, {5, 6}, {6, 5}, {0, 31}}
	for name, si := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, c := range coords {
				si.SetValue(c[0], c[1], &node{x: c[0], y: c[1]})
			}

			var got [][2]int
			si.Each(func(v *node) {
				got = append(got, [2]int{v.x, v.y})
			})
			sort.Slice(got, func(i, j int) bool {
				if got[i][0] != got[j][0] {
					return got[i][0] < got[j][0]
				}
				return got[i][1] < got[j][1]
			})

			want := make([][2]int, len(coords))
			copy(want, coords)
			sort.Slice(want, func(i, j int) bool {
				if want[i][0] != want[j][0] {
					return want[i][0] < want[j][0]
				}
				return want[i][1] < want[j][1]
			})
			assert.Equal(t, want, got)
		})
	}
}

func TestTableLargeRowKeys(t *testing.T) {
	// Row keys are uint32-backed; rows anywhere in [0,height) stay distinct
	// and ordered, including row zero and rows past the int16 range.
	si := NewTable[*node]()
	coords := [][2]int{{3, 70_000}, {0, 0}, {3, 1}, {5, 70_000}}
	for _, c := range coords {
		si.SetValue(c[0], c[1], &node{x: c[0], y: c[1]})
	}
	for _, c := range coords {
		v := si.Value(c[0], c[1])
		require.NotNil(t, v)
		assert.Equal(t, c[0], v.x)
		assert.Equal(t, c[1], v.y)
	}

	var rows []int
	si.EachRow(func(y int, row map[int]*node) {
		rows = append(rows, y)
	})
	assert.Equal(t, []int{0, 1, 70_000}, rows)
}

func TestPairingKeyDistinct(t *testing.T) {
	// Szudzik pairing must be injective over a dense coordinate block.
	seen := make(map[uint64][2]int)
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			k := pairingKey(x, y)
			if prev, ok := seen[k]; ok {
				t.Fatalf("key collision: (%d,%d) and (%d,%d)", prev[0], prev[1], x, y)
			}
			seen[k] = [2]int{x, y}
		}
	}
}

func TestTableEachRowAscending(t *testing.T) {
	tb := NewTable[*node]()
	tb.SetValue(4, 9, &node{})
	tb.SetValue(2, 1, &node{})
	tb.SetValue(8, 5, &node{})
	tb.SetValue(3, 5, &node{})

	var rows []int
	tb.EachRow(func(y int, row map[int]*node) {
		rows = append(rows, y)
	})
	assert.Equal(t, []int{1, 5, 9}, rows)
}

func TestForType(t *testing.T) {
	for _, typ := range []Type{TypeMap, TypeArray, TypeTable} {
		t.Run(typ.String(), func(t *testing.T) {
			sup, err := ForType[*node](typ, 16, 16)
			require.NoError(t, err)
			si := sup()
			si.SetValue(1, 2, &node{x: 1, y: 2})
			require.NotNil(t, si.Value(1, 2))
		})
	}

	_, err := ForType[*node](TypeArray, 0, 16)
	assert.Error(t, err)
	_, err = ForType[*node](Type(99), 16, 16)
	assert.Error(t, err)
}

func TestStackLazySlices(t *testing.T) {
	sup, err := ForType[*node](TypeMap, 0, 0)
	require.NoError(t, err)
	st := NewStack[*node](5, sup)

	require.Equal(t, 5, st.Depth())
	assert.Equal(t, 0, st.Len())
	assert.Nil(t, st.Slice(2))

	sl := st.NewSlice(2)
	require.NotNil(t, sl)
	assert.Equal(t, 1, st.Len())
	assert.Same(t, sl, st.Slice(2))
}

func TestStackNewSliceDiscardsPrior(t *testing.T) {
	sup, err := ForType[*node](TypeMap, 0, 0)
	require.NoError(t, err)
	st := NewStack[*node](3, sup)

	st.NewSlice(1).SetValue(0, 0, &node{})
	fresh := st.NewSlice(1)
	assert.Nil(t, fresh.Value(0, 0))
	assert.Equal(t, 1, st.Len())
}

func TestStackEachAscending(t *testing.T) {
	sup, err := ForType[*node](TypeMap, 0, 0)
	require.NoError(t, err)
	st := NewStack[*node](6, sup)
	st.NewSlice(4)
	st.NewSlice(0)
	st.NewSlice(2)

	var zs []int
	st.Each(func(z int, _ SearchImage[*node]) {
		zs = append(zs, z)
	})
	assert.Equal(t, []int{0, 2, 4}, zs)
}

func TestStackPanics(t *testing.T) {
	sup, err := ForType[*node](TypeMap, 0, 0)
	require.NoError(t, err)

	assert.Panics(t, func() { NewStack[*node](0, sup) })
	assert.Panics(t, func() { NewStack[*node](3, nil) })

	st := NewStack[*node](3, sup)
	assert.Panics(t, func() { st.Slice(-1) })
	assert.Panics(t, func() { st.Slice(3) })
	assert.Panics(t, func() { st.NewSlice(3) })
}

package searchimage

import "github.com/RoaringBitmap/roaring/v2"

// Table is the two-level sparse SearchImage backend: a row map of column
// maps. Occupied rows are tracked in a roaring bitmap so EachRow visits rows
// in ascending y order, which the single-map backend cannot offer.
//
// Like the other backends, Table assumes coordinates in [0,width)×[0,height):
// the row bitmap is keyed by uint32, so a negative y would wrap and EachRow
// would order it last. The search engines only store bounds-checked voxels,
// which satisfies the contract.
type Table[V comparable] struct {
	rows    map[int]map[int]V
	rowKeys *roaring.Bitmap
}

// NewTable returns an empty two-level backend.
func NewTable[V comparable]() *Table[V] {
	return &Table[V]{
		rows:    make(map[int]map[int]V),
		rowKeys: roaring.New(),
	}
}

// Value implements SearchImage.
func (t *Table[V]) Value(x, y int) V {
	row, ok := t.rows[y]
	if !ok {
		var zero V
		return zero
	}
	return row[x]
}

// SetValue implements SearchImage.
func (t *Table[V]) SetValue(x, y int, v V) {
	row, ok := t.rows[y]
	if !ok {
		row = make(map[int]V)
		t.rows[y] = row
		t.rowKeys.Add(uint32(y))
	}
	row[x] = v
}

// Each implements SearchImage.
func (t *Table[V]) Each(fn func(v V)) {
	for _, row := range t.rows {
		for _, v := range row {
			fn(v)
		}
	}
}

// EachRow calls fn once per occupied row in ascending y order.
func (t *Table[V]) EachRow(fn func(y int, row map[int]V)) {
	it := t.rowKeys.Iterator()
	for it.HasNext() {
		y := int(it.Next())
		fn(y, t.rows[y])
	}
}

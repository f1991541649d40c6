package crawl

// Table accumulates accepted posts keyed by id. Iteration follows
// insertion order; re-inserting an id replaces the value but keeps the
// original position, so a post repeated across a page boundary is
// naturally deduplicated.
type Table[K comparable, V any] struct {
	order []K
	items map[K]V
}

func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{items: make(map[K]V)}
}

func (t *Table[K, V]) Put(key K, value V) {
	if _, ok := t.items[key]; !ok {
		t.order = append(t.order, key)
	}
	t.items[key] = value
}

func (t *Table[K, V]) Get(key K) (V, bool) {
	value, ok := t.items[key]
	return value, ok
}

func (t *Table[K, V]) Len() int {
	return len(t.order)
}

func (t *Table[K, V]) Keys() []K {
	return t.order
}

func (t *Table[K, V]) Each(fn func(key K, value V)) {
	for _, key := range t.order {
		fn(key, t.items[key])
	}
}

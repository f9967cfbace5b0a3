package minimoore

import "iter"

// Hashable is implemented by HashMap keys whose equality is content-based.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. The whole package
// is single-threaded, so there is no locking.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	loadFactor float64
	emptyValue T
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity   int
	loadFactor float64
}

type HashMapOption func(*hashMapOptions)

// WithCapacity sets the initial capacity, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

// WithLoadFactor sets the resize threshold.
func WithLoadFactor(loadFactor float64) HashMapOption {
	return func(o *hashMapOptions) {
		o.loadFactor = loadFactor
	}
}

func NewHashMap[T any](options ...HashMapOption) *HashMap[T] {
	opts := &hashMapOptions{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, opt := range options {
		opt(opts)
	}

	realCap := 1
	for realCap < opts.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: opts.loadFactor,
	}
}

// Set inserts or updates the value for key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) Delete(key Hashable) {
	index := key.Hash() & m.mask

	var prev *entry[T]
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if e.key.Equals(key) {
			if prev == nil {
				m.buckets[index] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return
		}
	}
}

// Pop removes and returns an arbitrary entry; ok is false when the map is
// empty.
func (m *HashMap[T]) Pop() (Hashable, T, bool) {
	for i, head := range m.buckets {
		if head == nil {
			continue
		}
		m.buckets[i] = head.next
		m.size--
		return head.key, head.value, true
	}
	return nil, m.emptyValue, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			index := e.key.Hash() & newMask
			newBuckets[index] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[index],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

func (m *HashMap[T]) Size() int {
	return m.size
}

func (m *HashMap[T]) Iterator() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, bucket := range m.buckets {
			for e := bucket; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Package iterator holds single-pass pull iterators and the SkipIterator
// decorator that suppresses values on request.
package iterator

// Iterator yields values until Move reports false. Once exhausted it keeps
// returning the zero value and false.
type Iterator[V any] interface {
	Move() (V, bool)
}

type SliceIterator[V any] struct {
	Slice []V
	idx   int
}

func FromSlice[V any](slice []V) *SliceIterator[V] {
	return &SliceIterator[V]{Slice: slice}
}

func (s *SliceIterator[V]) Move() (V, bool) {
	if s.idx < len(s.Slice) {
		v := s.Slice[s.idx]
		s.idx++
		return v, true
	}
	return *new(V), false
}

// FuncIterator adapts a generator function. After the first false the
// function is not called again.
type FuncIterator[V any] struct {
	next func() (V, bool)
	done bool
}

func FromFunc[V any](next func() (V, bool)) *FuncIterator[V] {
	return &FuncIterator[V]{next: next}
}

func (f *FuncIterator[V]) Move() (V, bool) {
	if f.done {
		return *new(V), false
	}
	v, ok := f.next()
	if !ok {
		f.done = true
		return *new(V), false
	}
	return v, true
}

// ToList drains the iterator into a slice
func ToList[V any](it Iterator[V]) []V {
	var list []V
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		list = append(list, v)
	}
	return list
}

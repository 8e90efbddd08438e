package iterator

import "errors"

// ErrExhausted is returned by Next once every value has been consumed
var ErrExhausted = errors.New("iterator exhausted")

// SkipIterator wraps a source iterator and drops values that were marked with
// Skip. It keeps one value staged ahead of the caller so that HasNext is exact
// and Skip can withdraw the staged value.
type SkipIterator[V comparable] struct {
	source  Iterator[V]
	pending V
	staged  bool
	skips   map[V]int // outstanding suppressions per value
}

// NewSkipIterator stages the first value of src immediately.
func NewSkipIterator[V comparable](src Iterator[V]) *SkipIterator[V] {
	it := &SkipIterator[V]{
		source: src,
		skips:  make(map[V]int),
	}
	it.advance()
	return it
}

func (it *SkipIterator[V]) HasNext() bool {
	return it.staged
}

// Next returns the staged value and stages the following one. It returns
// ErrExhausted on every call after the source ran dry.
func (it *SkipIterator[V]) Next() (V, error) {
	if !it.staged {
		return *new(V), ErrExhausted
	}
	v := it.pending
	it.advance()
	return v, nil
}

// Skip suppresses the next occurrence of v that has not been drawn from the
// source yet. Calls accumulate: Skip(5) twice drops the next two 5s.
//
// When v is the staged value it is discarded as well and lookahead moves on.
// The discarded value does not use up the suppression just added, which still
// applies to the next occurrence of v further down the source.
func (it *SkipIterator[V]) Skip(v V) {
	it.skips[v]++
	if it.staged && it.pending == v {
		it.advance()
	}
}

// Move makes SkipIterator usable wherever an Iterator is expected.
func (it *SkipIterator[V]) Move() (V, bool) {
	v, err := it.Next()
	return v, err == nil
}

// Drain returns every remaining value in order.
func (it *SkipIterator[V]) Drain() []V {
	return ToList[V](it)
}

// advance draws from the source until a value without outstanding skips is
// found, consuming one skip for every value it drops.
func (it *SkipIterator[V]) advance() {
	it.pending, it.staged = *new(V), false

	for v, ok := it.source.Move(); ok; v, ok = it.source.Move() {
		if n := it.skips[v]; n > 0 {
			if n == 1 {
				delete(it.skips, v)
			} else {
				it.skips[v] = n - 1
			}
			continue
		}
		it.pending, it.staged = v, true
		return
	}
}

package config

import "sync"

// lazy holds a value computed on first use. Until get runs, the value is
// unresolved; afterwards it is resolved for good, even when the computed
// value is a zero value.
type lazy[T any] struct {
	once  sync.Once
	value T
}

// get returns the resolved value, running resolve if no value has been
// resolved yet. Concurrent callers block until the first resolve returns.
func (l *lazy[T]) get(resolve func() T) T {
	l.once.Do(func() {
		l.value = resolve()
	})
	return l.value
}

// optional is a string that may be absent.
type optional struct {
	value string
	ok    bool
}

func optionalOf(value string, ok bool) optional {
	return optional{value: value, ok: ok}
}

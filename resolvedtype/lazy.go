package resolvedtype

import "sync"

// lazy holds a value that is computed at most once, on first use
type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (l *lazy[T]) get(compute func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = compute()
	})
	return l.value, l.err
}

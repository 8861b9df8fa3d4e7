package submission

import "sync"

// keyLock serializes work per key inside one process, e.g. two registrations
// for the same email arriving on different connections. It does not replace
// the storage constraints; other processes are not covered.
type keyLock struct {
	mu    sync.Mutex
	byKey map[string]*keyEntry
}

type keyEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{byKey: make(map[string]*keyEntry)}
}

// lock blocks until key is free and returns the unlock func. Entries are
// dropped once nobody holds or waits for them.
func (l *keyLock) lock(key string) func() {
	l.mu.Lock()
	e, ok := l.byKey[key]
	if !ok {
		e = &keyEntry{}
		l.byKey[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.byKey, key)
		}
		l.mu.Unlock()
	}
}

func (l *keyLock) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

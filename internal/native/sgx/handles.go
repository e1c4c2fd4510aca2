package sgx

import (
	"sync"

	"enclavecrypt/internal/native"
)

// handleTable maps Go-side handles to library context pointers so that C
// pointers never round-trip through an integer.
type handleTable[T any] struct {
	mu   sync.Mutex
	next native.Handle
	m    map[native.Handle]T
}

func (t *handleTable[T]) put(v T) native.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.m == nil {
		t.m = make(map[native.Handle]T)
	}
	t.next++
	t.m[t.next] = v
	return t.next
}

func (t *handleTable[T]) get(h native.Handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.m[h]
	return v, ok
}

func (t *handleTable[T]) remove(h native.Handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.m[h]
	delete(t.m, h)
	return v, ok
}

// message returns b, or a one-byte scratch buffer when b is empty. The
// library rejects a NULL source pointer even for zero-length input.
func message(b []byte) []byte {
	if len(b) == 0 {
		return make([]byte, 1)
	}
	return b
}

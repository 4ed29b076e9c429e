package arena

import "sync"

// Handle is an opaque, pointer-sized token identifying one value stored in
// a Table. Handle 0 is reserved and always invalid; it is the "no value"
// sentinel across the boundary.
//
// A handle encodes a slot index in its low 32 bits and the slot's
// generation in its high 32 bits. Freeing a handle bumps the slot's
// generation, so a stale handle (freed, or freed and its slot since
// reused) no longer resolves: lookups report failure instead of returning
// another caller's value.
type Handle uint64

const indexMask = 0xffffffff

func pack(idx int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx+1))
}

func (h Handle) index() (int, bool) {
	idx := uint64(h) & indexMask
	if idx == 0 {
		return 0, false
	}
	return int(idx - 1), true
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> 32)
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Table is a slot arena mapping handles to values of type T.
//
// The table itself is safe for concurrent use; the values it stores are
// not synchronized. Callers operating on different handles need no
// coordination, callers sharing a handle must provide their own.
type Table[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []int
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		slots: make([]slot[T], 0, 64),
		free:  make([]int, 0, 16),
	}
}

// Put stores a value and returns its handle. The table owns the value
// until Take removes it.
func (t *Table[T]) Put(value T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[idx]
		s.value = value
		s.live = true
		return pack(idx, s.gen)
	}

	t.slots = append(t.slots, slot[T]{value: value, live: true})
	return pack(len(t.slots)-1, 0)
}

// Get returns the value for a handle. It reports false for the zero
// sentinel and for stale or never-issued handles.
func (t *Table[T]) Get(h Handle) (T, bool) {
	var zero T
	idx, ok := h.index()
	if !ok {
		return zero, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if idx >= len(t.slots) {
		return zero, false
	}
	s := t.slots[idx]
	if !s.live || s.gen != h.generation() {
		return zero, false
	}
	return s.value, true
}

// Replace swaps the stored value for a live handle, keeping the handle
// valid. Used by in-place mutation; the exclusive-access contract is the
// caller's.
func (t *Table[T]) Replace(h Handle, value T) bool {
	idx, ok := h.index()
	if !ok {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if idx >= len(t.slots) {
		return false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != h.generation() {
		return false
	}
	s.value = value
	return true
}

// Take removes a value from the table and returns it. The slot's
// generation is bumped, so the handle and any copies of it are dead from
// this point on; a second Take of the same handle reports false.
func (t *Table[T]) Take(h Handle) (T, bool) {
	var zero T
	idx, ok := h.index()
	if !ok {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if idx >= len(t.slots) {
		return zero, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != h.generation() {
		return zero, false
	}

	value := s.value
	s.value = zero
	s.live = false
	s.gen++
	t.free = append(t.free, idx)
	return value, true
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, s := range t.slots {
		if s.live {
			count++
		}
	}
	return count
}

// Clear removes every live value.
func (t *Table[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	for i := range t.slots {
		if t.slots[i].live {
			t.slots[i].value = zero
			t.slots[i].live = false
			t.slots[i].gen++
			t.free = append(t.free, i)
		}
	}
}

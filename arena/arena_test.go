package arena

import (
	"sync"
	"testing"
)

func TestTable_PutGetTake(t *testing.T) {
	table := NewTable[string]()

	h := table.Put("img")
	if h == 0 {
		t.Fatal("expected non-zero handle")
	}

	v, ok := table.Get(h)
	if !ok {
		t.Fatal("Get failed for live handle")
	}
	if v != "img" {
		t.Fatalf("Get: got %q, want %q", v, "img")
	}

	v, ok = table.Take(h)
	if !ok {
		t.Fatal("Take failed for live handle")
	}
	if v != "img" {
		t.Fatalf("Take: got %q, want %q", v, "img")
	}

	if table.Len() != 0 {
		t.Fatalf("Len after Take: got %d, want 0", table.Len())
	}
}

func TestTable_ZeroHandle(t *testing.T) {
	table := NewTable[string]()

	if _, ok := table.Get(0); ok {
		t.Fatal("Get(0) should fail")
	}
	if _, ok := table.Take(0); ok {
		t.Fatal("Take(0) should fail")
	}
	if table.Replace(0, "x") {
		t.Fatal("Replace(0) should fail")
	}
}

func TestTable_DoubleTake(t *testing.T) {
	table := NewTable[int]()

	h := table.Put(7)
	if _, ok := table.Take(h); !ok {
		t.Fatal("first Take failed")
	}
	if _, ok := table.Take(h); ok {
		t.Fatal("second Take of the same handle should fail")
	}
	if _, ok := table.Get(h); ok {
		t.Fatal("Get after Take should fail")
	}
}

func TestTable_StaleHandleAfterReuse(t *testing.T) {
	table := NewTable[int]()

	old := table.Put(1)
	table.Take(old)

	// The freed slot is recycled for the next Put.
	fresh := table.Put(2)
	if fresh == old {
		t.Fatal("recycled slot must not reissue the same handle")
	}

	if _, ok := table.Get(old); ok {
		t.Fatal("stale handle must not resolve to the new occupant")
	}
	v, ok := table.Get(fresh)
	if !ok || v != 2 {
		t.Fatalf("fresh handle: got (%d, %v), want (2, true)", v, ok)
	}
}

func TestTable_Replace(t *testing.T) {
	table := NewTable[int]()

	h := table.Put(1)
	if !table.Replace(h, 2) {
		t.Fatal("Replace failed for live handle")
	}

	v, _ := table.Get(h)
	if v != 2 {
		t.Fatalf("after Replace: got %d, want 2", v)
	}

	table.Take(h)
	if table.Replace(h, 3) {
		t.Fatal("Replace should fail for a dead handle")
	}
}

func TestTable_NeverIssuedHandle(t *testing.T) {
	table := NewTable[int]()
	table.Put(1)

	if _, ok := table.Get(Handle(9999)); ok {
		t.Fatal("never-issued handle should not resolve")
	}
}

func TestTable_Clear(t *testing.T) {
	table := NewTable[int]()

	h1 := table.Put(1)
	h2 := table.Put(2)
	table.Clear()

	if table.Len() != 0 {
		t.Fatalf("Len after Clear: got %d, want 0", table.Len())
	}
	if _, ok := table.Get(h1); ok {
		t.Fatal("handle should be dead after Clear")
	}
	if _, ok := table.Get(h2); ok {
		t.Fatal("handle should be dead after Clear")
	}
}

func TestTable_ConcurrentDistinctHandles(t *testing.T) {
	table := NewTable[int]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			h := table.Put(n)
			v, ok := table.Get(h)
			if !ok || v != n {
				t.Errorf("goroutine %d: got (%d, %v)", n, v, ok)
			}
			if _, ok := table.Take(h); !ok {
				t.Errorf("goroutine %d: Take failed", n)
			}
		}(i)
	}
	wg.Wait()

	if table.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", table.Len())
	}
}

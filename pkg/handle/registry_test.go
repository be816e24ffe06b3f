package handle

import (
	"errors"
	"sync"
	"testing"
)

type counter struct {
	n int
}

func (c *counter) incr() int {
	c.n++
	return c.n
}

func TestRegistry_CreateIssuesDistinctNonZeroHandles(t *testing.T) {
	r := New[counter](nil)

	seen := make(map[Handle]bool)
	for i := 0; i < 1000; i++ {
		h := r.Create(&counter{})
		if h == Invalid {
			t.Fatalf("Create returned the invalid handle at iteration %d", i)
		}
		if seen[h] {
			t.Fatalf("Create returned duplicate handle %v", h)
		}
		seen[h] = true
	}
	if r.Len() != 1000 {
		t.Errorf("Len = %d, want 1000", r.Len())
	}
}

func TestRegistry_ConcurrentCreateIsUnique(t *testing.T) {
	r := New[counter](nil)

	const workers = 16
	const perWorker = 200

	var wg sync.WaitGroup
	results := make(chan Handle, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results <- r.Create(&counter{})
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[Handle]bool)
	for h := range results {
		if h == Invalid {
			t.Fatal("Create returned the invalid handle")
		}
		if seen[h] {
			t.Fatalf("duplicate handle %v", h)
		}
		seen[h] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("got %d handles, want %d", len(seen), workers*perWorker)
	}
	if r.Len() != workers*perWorker {
		t.Errorf("Len = %d, want %d", r.Len(), workers*perWorker)
	}
}

func TestWith(t *testing.T) {
	r := New[counter](nil)
	h := r.Create(&counter{n: 41})

	got, ok := With(r, h, (*counter).incr)
	if !ok {
		t.Fatal("With reported a live handle as missing")
	}
	if got != 42 {
		t.Errorf("With result = %d, want 42", got)
	}

	called := false
	got, ok = With(r, Handle(9999), func(c *counter) int {
		called = true
		return c.incr()
	})
	if ok || got != 0 || called {
		t.Errorf("With on unknown handle = (%d, %v), called=%v; want (0, false), not called", got, ok, called)
	}

	_, ok = With(r, Invalid, (*counter).incr)
	if ok {
		t.Error("With resolved the invalid handle")
	}
}

func TestWith_AfterDestroyIsNotFound(t *testing.T) {
	r := New[counter](nil)
	h := r.Create(&counter{})

	if !r.Destroy(h) {
		t.Fatal("Destroy reported a live handle as missing")
	}
	if _, ok := With(r, h, (*counter).incr); ok {
		t.Error("With resolved a destroyed handle")
	}
	if r.Contains(h) {
		t.Error("Contains reported a destroyed handle")
	}

	// A new object must not reuse the destroyed number.
	h2 := r.Create(&counter{})
	if h2 == h {
		t.Errorf("Create reused destroyed handle %v", h)
	}
}

func TestDestroy_IsIdempotent(t *testing.T) {
	r := New[counter](nil)
	keep := r.Create(&counter{})
	h := r.Create(&counter{})

	if !r.Destroy(h) {
		t.Fatal("first Destroy returned false")
	}
	if r.Destroy(h) {
		t.Error("second Destroy returned true")
	}
	if r.Destroy(Invalid) {
		t.Error("Destroy(Invalid) returned true")
	}
	if r.Len() != 1 || !r.Contains(keep) {
		t.Errorf("unrelated entry affected: Len=%d Contains(keep)=%v", r.Len(), r.Contains(keep))
	}
}

func TestDo(t *testing.T) {
	r := New[counter](nil)
	h := r.Create(&counter{})

	if err := r.Do(h, func(c *counter) { c.incr() }); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	n, _ := With(r, h, func(c *counter) int { return c.n })
	if n != 1 {
		t.Errorf("counter = %d, want 1", n)
	}

	r.Destroy(h)
	err := r.Do(h, func(c *counter) { c.incr() })
	if !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Do after Destroy = %v, want ErrInvalidHandle", err)
	}
}

func TestSharedSequence_SeparatesRegistries(t *testing.T) {
	seq := NewSequence()
	ints := New[counter](seq)
	strs := New[string](seq)

	hi := ints.Create(&counter{})
	s := "x"
	hs := strs.Create(&s)

	if hi == hs {
		t.Fatalf("registries sharing a sequence issued the same handle %v", hi)
	}
	if strs.Contains(hi) {
		t.Error("string registry resolved a counter handle")
	}
	if ints.Contains(hs) {
		t.Error("counter registry resolved a string handle")
	}
	if seq.Last() != hs {
		t.Errorf("Last = %v, want %v", seq.Last(), hs)
	}
}

func TestRegistry_ConcurrentOperationsMatchSequential(t *testing.T) {
	run := func(r *Registry[counter]) int {
		h := r.Create(&counter{})
		var last int
		for i := 0; i < 100; i++ {
			last, _ = With(r, h, (*counter).incr)
		}
		r.Destroy(h)
		return last
	}

	sequential := run(New[counter](nil))

	r := New[counter](nil)
	const workers = 32
	got := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got[w] = run(r)
		}(w)
	}
	wg.Wait()

	for w, v := range got {
		if v != sequential {
			t.Errorf("worker %d result = %d, want %d", w, v, sequential)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Len after all workers = %d, want 0", r.Len())
	}
}

func TestHandle_String(t *testing.T) {
	if got := Handle(42).String(); got != "42" {
		t.Errorf("String = %q, want 42", got)
	}
	if Invalid.IsValid() {
		t.Error("Invalid.IsValid() = true")
	}
	if !Handle(1).IsValid() {
		t.Error("Handle(1).IsValid() = false")
	}
}

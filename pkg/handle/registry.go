package handle

import "sync"

// Registry stores objects of one type behind handles.
// The zero value is not usable; create registries with New.
type Registry[T any] struct {
	seq *Sequence

	mu      sync.Mutex
	entries map[Handle]*T
}

// New creates an empty registry drawing handles from seq.
// A nil seq gives the registry a private sequence.
func New[T any](seq *Sequence) *Registry[T] {
	if seq == nil {
		seq = NewSequence()
	}
	return &Registry[T]{
		seq:     seq,
		entries: make(map[Handle]*T),
	}
}

// Create stores v and returns its new handle.
// The handle is never Invalid and is distinct from every handle issued
// earlier by the same sequence.
func (r *Registry[T]) Create(v *T) Handle {
	h := r.seq.Next()

	r.mu.Lock()
	r.entries[h] = v
	r.mu.Unlock()

	return h
}

// With runs fn against the object stored under h and returns its result.
// The second return value is false when h is not present, in which case fn
// is not called and the zero value of R is returned.
//
// The registry lock is held while fn runs.
func With[T, R any](r *Registry[T], h Handle, fn func(*T) R) (R, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.entries[h]
	if !ok {
		var zero R
		return zero, false
	}
	return fn(v), true
}

// Do runs fn against the object stored under h.
// It returns ErrInvalidHandle when h is not present.
func (r *Registry[T]) Do(h Handle, fn func(*T)) error {
	_, ok := With(r, h, func(v *T) struct{} {
		fn(v)
		return struct{}{}
	})
	if !ok {
		return ErrInvalidHandle
	}
	return nil
}

// Destroy removes the object stored under h and reports whether it was present.
// Destroying an unknown or already destroyed handle is a no-op.
func (r *Registry[T]) Destroy(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[h]; !ok {
		return false
	}
	delete(r.entries, h)
	return true
}

// Contains reports whether h currently names a live object.
func (r *Registry[T]) Contains(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[h]
	return ok
}

// Len returns the number of live objects.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

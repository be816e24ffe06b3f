// Package handle maps opaque numeric handles to live Go objects.
//
// Handles stand in for object references across a boundary that can only
// carry primitive values, such as an exported C API. A handle is a plain
// unsigned integer; it does not encode the type of the object it names, so
// each domain type gets its own [Registry]. Registries that share a
// [Sequence] never hand out the same number twice, which means a handle
// issued for one type cannot resolve to an object of another type.
//
// # Usage
//
//	seq := handle.NewSequence()
//	calcs := handle.New[Calculator](seq)
//
//	h := calcs.Create(&Calculator{})
//	sum, ok := handle.With(calcs, h, func(c *Calculator) int32 {
//	    return c.Add(1, 2)
//	})
//	calcs.Destroy(h)
//
// # Locking
//
// Each registry is guarded by a single mutex. The mutex is held for the map
// access and for the whole callback passed to [With] or [Registry.Do], so
// operations on objects of the same registry are serialized. This keeps the
// contract simple: no two operations on one handle ever interleave, and a
// handle cannot be destroyed while an operation on it is running.
package handle

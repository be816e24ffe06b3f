// Package ports defines the module contracts shared by the static and the
// dynamic host.
//
// The demo flows in internal/demo depend only on these interfaces. Statically
// linked packages (pkg/mathlib, pkg/stringlib, pkg/common) satisfy them through
// thin adapters, and the dynamic clients in pkg/loader satisfy them by calling
// through the C ABI.
//
//   - [Calculator]: integer arithmetic module
//   - [StringProcessor]: text module
//   - [LineLogger]: prefixed console logger from the common module
//
// String operations return an error because marshaling at a boundary can
// fail; arithmetic carries only primitive values and cannot.
package ports

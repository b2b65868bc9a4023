// Package kernel provides core domain primitives shared by the order desk domain model.
//
// The package includes:
//   - UID: the 13-character public identifier used by orders and products
//
// Primitives are immutable values validated at construction time, so domain objects
// holding them never carry malformed identifiers.
package kernel

// Package services provides domain services of the order desk that do not belong
// to a single aggregate root.
//
// The package includes:
//   - UIDAllocator: draws public identifiers and retries on collision against a storage scope
package services

// Package kernel contains shared value objects used across the storefront
// domain model: UUID identifiers and postal Addresses.
//
// Kernel types are immutable and validated at construction, so aggregates
// can embed them without re-checking their internal consistency. Both
// provide Validate for use when reconstructing aggregates from
// persistence.
package kernel

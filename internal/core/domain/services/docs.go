// Package services provides domain services that orchestrate business
// rules across multiple aggregates.
//
// The package includes:
//   - StatusResolver: computes the admin's legal next order statuses,
//     folding in the delivery sub-record for delivery-type orders, and
//     guards the assign-delivery precondition.
//
// Domain services hold logic that spans aggregates and so does not
// belong to any single aggregate root.
package services

// Package order contains the Order aggregate and its value objects.
//
// An order is created at checkout and moves through a lifecycle driven
// by the store's staff, with a small set of customer-driven moves
// (cancelling while pending, opening a return after completion). The
// status, fulfillment type, and return sub-state are modeled as value
// objects with explicit string forms for the API and storage layers.
package order

// Package delivery contains the Delivery aggregate: the record created
// when an admin hands a delivery-type order to a delivery employee.
// The assigned employee alone drives its status machine, and the order's
// own lifecycle reacts to it (an admin completes the order only once
// the delivery reports DELIVERED).
package delivery

// Package job models the delivery job aggregate and its two state machines.
//
// Status drives the physical lifecycle (pending -> assigned -> picked_up -> in_transit ->
// delivered | failed) and PaymentStatus the settlement (unpaid -> pending -> paid | failed).
// Both are closed enumerations with an explicit adjacency table; an illegal move returns an
// errs.ConflictError that names the current state and the allowed next states.
//
// Assignment couples the driver and the status: AssignDriver is the only way into Assigned,
// and a Job has a driver exactly when it is no longer Pending.
package job

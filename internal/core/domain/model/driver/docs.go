// Package driver models courier drivers: contact details, duty status and the last
// location reported by their device. The stale-driver job uses IsStale to send drivers
// that stopped reporting off duty.
package driver

// Package kernel holds the value objects shared by every courier aggregate:
// UUID identifiers, geographic Location coordinates and street Address values.
//
// All of them are immutable. UUID and Location reject their zero values in Validate,
// so an aggregate can never persist an identifier or coordinate that skipped its constructor.
package kernel

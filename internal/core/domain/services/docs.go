// Package services holds domain services that work across aggregates.
//
// RouteSolver sequences a driver's stops with a greedy nearest-neighbour heuristic
// over coordinates supplied by the caller. It measures legs through the
// ports.DistanceCalculator it is built with and performs no other I/O.
package services

// Package driver holds the driver-side domain model of the dispatch engine.
//
// The engine only needs one thing from a driver: which service categories
// they are registered for. CategoryLicense captures that registration
// together with the vehicle details shown to clients. Driver identity,
// profile, and authentication live outside the engine.
package driver

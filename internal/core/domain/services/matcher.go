package services

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// Candidate pairs a nearby driver with the licenses that driver holds.
// The slice order carries the proximity ranking produced by the geo search.
type Candidate struct {
	DriverID kernel.UUID
	Licenses []*driver.CategoryLicense
}

// Matcher is a domain service that filters proximity-ranked driver candidates
// down to the ones eligible to serve a given order.
//
// Business rules:
//   - A driver is eligible only when holding a license covering the order's
//     category.
//   - A client ordering as a driver never sees their own order.
//   - Proximity ranking of the input is preserved in the output.
//
// The matcher is pure: it performs no I/O and never mutates the order. Actual
// notification fan-out happens in the application layer.
type Matcher struct{}

// NewMatcher creates a new Matcher instance.
func NewMatcher() Matcher {
	return Matcher{}
}

// Match returns the identifiers of candidates eligible for the order, in the
// same order they were supplied.
//
// Returns an error only when the order itself is invalid; an empty result is
// a normal outcome meaning nobody qualifies right now.
func (m Matcher) Match(aggregate *order.Order, candidates []Candidate) ([]kernel.UUID, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	eligible := make([]kernel.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.DriverID.IsEqual(aggregate.ClientID()) {
			continue
		}

		if !m.holdsLicense(candidate.Licenses, aggregate.Category()) {
			continue
		}

		eligible = append(eligible, candidate.DriverID)
	}

	return eligible, nil
}

func (m Matcher) holdsLicense(licenses []*driver.CategoryLicense, category kernel.Category) bool {
	for _, license := range licenses {
		if license.Covers(category) {
			return true
		}
	}

	return false
}

package order

import (
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrRoutePointIsNotConstructed is returned when validating a RoutePoint that
// was not created through NewRoutePoint.
var ErrRoutePointIsNotConstructed = errs.NewValueIsRequiredError(
	"route point must be created via NewRoutePoint constructor")

// RoutePoint describes one end of the route: the human-readable address and
// the identifier assigned by the external geocoder. The geocoder id may be
// empty for free-form addresses; the address text is required.
type RoutePoint struct { //nolint:recvcheck //using for validation
	address string
	geoID   string
	guard   guard.ConstructorGuard
}

// NewRoutePoint creates a RoutePoint. Address must not be empty.
func NewRoutePoint(address, geoID string) (RoutePoint, error) {
	point := RoutePoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := point.setAddress(address); err != nil {
		return RoutePoint{}, err
	}
	point.geoID = geoID

	return point, nil
}

// Validate checks the point was created through NewRoutePoint.
func (p RoutePoint) Validate() error {
	return p.guard.Validate(ErrRoutePointIsNotConstructed)
}

// Address returns the human-readable address text.
func (p RoutePoint) Address() string {
	return p.address
}

// GeoID returns the external geocoder identifier, possibly empty.
func (p RoutePoint) GeoID() string {
	return p.geoID
}

func (p *RoutePoint) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}

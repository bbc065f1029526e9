package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetClientOrderHistoryQueryIsNotConstructed = errors.New(
	"GetClientOrderHistoryQuery must be created via NewGetClientOrderHistoryQuery constructor",
)

// GetClientOrderHistoryQuery retrieves every order a client ever placed,
// finished and active alike.
type GetClientOrderHistoryQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientOrderHistoryQuery creates a query for one client's orders.
func NewGetClientOrderHistoryQuery(clientID kernel.UUID) (GetClientOrderHistoryQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientOrderHistoryQuery{}, err
	}

	return GetClientOrderHistoryQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrderHistoryQueryIsNotConstructed)
}

// ClientID returns the client whose history is requested.
func (q GetClientOrderHistoryQuery) ClientID() kernel.UUID {
	return q.clientID
}

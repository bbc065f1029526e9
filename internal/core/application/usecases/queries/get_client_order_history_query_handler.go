package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetClientOrderHistoryQueryHandler reads one client's full order history
// from the database.
type GetClientOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrderHistoryQueryHandler creates a handler for client history
// queries.
func NewGetClientOrderHistoryQueryHandler(db *gorm.DB) GetClientOrderHistoryQueryHandler {
	return GetClientOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h GetClientOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrderHistoryQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			driver_id,
			category,
			status,
			origin_address,
			dest_address,
			pickup_lat,
			pickup_lng,
			price,
			rating,
			created_at,
			ended_at
		FROM orders
		WHERE client_id = ?
		ORDER BY created_at DESC
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

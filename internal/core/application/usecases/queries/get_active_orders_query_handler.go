package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads all non-terminal orders from the
// database. Reads raw projection rows, never aggregates.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal := make([]string, 0, len(order.TerminalStatuses()))
	for _, status := range order.TerminalStatuses() {
		terminal = append(terminal, status.String())
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
		WHERE status NOT IN (?)
		ORDER BY created_at DESC
	`, terminal).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries maps projection rows shared by the order list queries.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var (
			summary  OrderSummary
			id       uuid.UUID
			clientID uuid.UUID
			driverID uuid.NullUUID
		)

		err := rows.Scan(
			&id,
			&clientID,
			&driverID,
			&summary.Category,
			&summary.Status,
			&summary.OriginAddress,
			&summary.DestAddress,
			&summary.PickupLat,
			&summary.PickupLng,
			&summary.Price,
			&summary.Rating,
			&summary.CreatedAt,
			&summary.EndedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if driverID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			summary.DriverID = &assigned
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

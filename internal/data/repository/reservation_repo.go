package repository

import (
	"context"
	"fmt"

	"theatre-api/internal/data/entity"
	"theatre-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// CreateWithTickets inserts the reservation and all its tickets in one
	// transaction. A duplicate (performance, row, seat) fails the whole
	// transaction with ErrSeatTaken.
	CreateWithTickets(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) error
	AppendTickets(ctx context.Context, reservationID uuid.UUID, tickets []*entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) CreateWithTickets(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create reservation: %w", err)
	}
	defer tx.Rollback(ctx)

	insertReservation := `
		INSERT INTO reservations (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertReservation,
		reservation.ID,
		reservation.UserID,
		reservation.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
		)
		return fmt.Errorf("create reservation for user %s: %w", reservation.UserID.String(), err)
	}

	if err := insertTickets(ctx, tx, tickets); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservation: %w", err)
	}

	r.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", reservation.UserID.String()),
		zap.Int("ticket_count", len(tickets)),
	)
	return nil
}

func (r *reservationRepository) AppendTickets(ctx context.Context, reservationID uuid.UUID, tickets []*entity.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append tickets: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertTickets(ctx, tx, tickets); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit append tickets: %w", err)
	}

	r.log.Info("Tickets appended",
		zap.String("reservation_id", reservationID.String()),
		zap.Int("ticket_count", len(tickets)),
	)
	return nil
}

// insertTickets checks every seat inside the transaction before inserting,
// so a concurrent duplicate booking cannot slip between check and insert
// within the same request.
func insertTickets(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error {
	checkSeat := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE performance_id = $1 AND "row" = $2 AND seat = $3
		)
	`
	insertTicket := `
		INSERT INTO tickets (id, "row", seat, performance_id, reservation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, ticket := range tickets {
		var taken bool
		if err := tx.QueryRow(ctx, checkSeat,
			ticket.PerformanceID, ticket.Row, ticket.Seat,
		).Scan(&taken); err != nil {
			return fmt.Errorf("check seat %d-%d: %w", ticket.Row, ticket.Seat, err)
		}
		if taken {
			return fmt.Errorf("seat row %d seat %d for performance %s: %w",
				ticket.Row, ticket.Seat, ticket.PerformanceID.String(), ErrSeatTaken)
		}

		if _, err := tx.Exec(ctx, insertTicket,
			ticket.ID,
			ticket.Row,
			ticket.Seat,
			ticket.PerformanceID,
			ticket.ReservationID,
			ticket.CreatedAt,
		); err != nil {
			return fmt.Errorf("create ticket row %d seat %d: %w", ticket.Row, ticket.Seat, err)
		}
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Tickets cascade at the database level
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

package repository

import (
	"context"
	"fmt"

	"theatre-api/internal/data/entity"
	"theatre-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatPlace is a taken (row, seat) pair of a performance.
type SeatPlace struct {
	Row  int
	Seat int
}

// TicketRow is a ticket joined with the summary of its performance.
type TicketRow struct {
	entity.Ticket
	Performance PerformanceRow
}

type TicketRepository interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error)
	// FindRowsByUserID returns every ticket of the user's reservations with
	// the performance summary attached, in one query.
	FindRowsByUserID(ctx context.Context, userID uuid.UUID) ([]*TicketRow, error)
	FindTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]SeatPlace, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, "row", seat, performance_id, reservation_id, created_at
		FROM tickets
		WHERE reservation_id = $1
		ORDER BY "row", seat
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find tickets by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find tickets by reservation ID %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ReservationID,
			&ticket.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) FindTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]SeatPlace, error) {
	query := `
		SELECT "row", seat
		FROM tickets
		WHERE performance_id = $1
		ORDER BY "row", seat
	`

	rows, err := r.db.Query(ctx, query, performanceID)
	if err != nil {
		r.log.Error("Failed to find taken places",
			zap.Error(err),
			zap.String("performance_id", performanceID.String()),
		)
		return nil, fmt.Errorf("find taken places of performance %s: %w", performanceID.String(), err)
	}
	defer rows.Close()

	var places []SeatPlace
	for rows.Next() {
		var place SeatPlace
		if err := rows.Scan(&place.Row, &place.Seat); err != nil {
			return nil, fmt.Errorf("scan taken place row: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taken place rows: %w", err)
	}

	return places, nil
}

func (r *ticketRepository) FindRowsByUserID(ctx context.Context, userID uuid.UUID) ([]*TicketRow, error) {
	query := `
		SELECT t.id, t."row", t.seat, t.performance_id, t.reservation_id, t.created_at,
		       p.id, p.play_id, p.theatre_hall_id, p.show_time, p.created_at, p.updated_at,
		       pl.title, h.name, h.rows, h.seats_per_row,
		       (SELECT COUNT(*) FROM tickets sold WHERE sold.performance_id = p.id) AS tickets_sold
		FROM tickets t
		JOIN reservations res ON res.id = t.reservation_id
		JOIN performances p ON p.id = t.performance_id
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls h ON h.id = p.theatre_hall_id
		WHERE res.user_id = $1
		ORDER BY t.created_at, t."row", t.seat
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find tickets by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find tickets by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var tickets []*TicketRow
	for rows.Next() {
		var row TicketRow
		err := rows.Scan(
			&row.ID,
			&row.Row,
			&row.Seat,
			&row.PerformanceID,
			&row.ReservationID,
			&row.CreatedAt,
			&row.Performance.ID,
			&row.Performance.PlayID,
			&row.Performance.TheatreHallID,
			&row.Performance.ShowTime,
			&row.Performance.CreatedAt,
			&row.Performance.UpdatedAt,
			&row.Performance.PlayTitle,
			&row.Performance.HallName,
			&row.Performance.HallRows,
			&row.Performance.HallSeatsPerRow,
			&row.Performance.TicketsSold,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

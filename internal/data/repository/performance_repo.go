package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PerformanceFilter narrows performance listings. Date matches the calendar
// day of show_time, HallID is also used for overseer scoping.
type PerformanceFilter struct {
	Date   *time.Time
	PlayID *uuid.UUID
	HallID *uuid.UUID
}

// PerformanceRow is a performance joined with its hall and the count of
// tickets already issued. Availability is capacity minus TicketsSold.
type PerformanceRow struct {
	entity.Performance
	PlayTitle       string
	HallName        string
	HallRows        int
	HallSeatsPerRow int
	TicketsSold     int
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *entity.Performance) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error)
	FindAll(ctx context.Context, filter PerformanceFilter) ([]*PerformanceRow, error)
	Update(ctx context.Context, performance *entity.Performance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type performanceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPerformanceRepository(db database.PgxIface, log *zap.Logger) PerformanceRepository {
	return &performanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "performance")),
	}
}

func (r *performanceRepository) Create(ctx context.Context, performance *entity.Performance) error {
	query := `
		INSERT INTO performances (id, play_id, theatre_hall_id, show_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		performance.ID,
		performance.PlayID,
		performance.TheatreHallID,
		performance.ShowTime,
		performance.CreatedAt,
		performance.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create performance",
			zap.Error(err),
			zap.String("play_id", performance.PlayID.String()),
			zap.String("hall_id", performance.TheatreHallID.String()),
		)
		return fmt.Errorf("create performance for play %s: %w", performance.PlayID.String(), err)
	}

	return nil
}

func (r *performanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error) {
	query := `
		SELECT id, play_id, theatre_hall_id, show_time, created_at, updated_at
		FROM performances
		WHERE id = $1
	`

	var performance entity.Performance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.ShowTime,
		&performance.CreatedAt,
		&performance.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find performance by ID",
			zap.Error(err),
			zap.String("performance_id", id.String()),
		)
		return nil, fmt.Errorf("find performance by ID %s: %w", id.String(), err)
	}

	return &performance, nil
}

const performanceRowSelect = `
	SELECT p.id, p.play_id, p.theatre_hall_id, p.show_time, p.created_at, p.updated_at,
	       pl.title, h.name, h.rows, h.seats_per_row,
	       COUNT(t.id)
	FROM performances p
	JOIN plays pl ON pl.id = p.play_id
	JOIN theatre_halls h ON h.id = p.theatre_hall_id
	LEFT JOIN tickets t ON t.performance_id = p.id
`

func (r *performanceRepository) FindAll(ctx context.Context, filter PerformanceFilter) ([]*PerformanceRow, error) {
	where := []string{}
	args := []any{}

	if filter.Date != nil {
		args = append(args, filter.Date.Format("2006-01-02"))
		where = append(where, fmt.Sprintf("p.show_time::date = $%d", len(args)))
	}
	if filter.PlayID != nil {
		args = append(args, *filter.PlayID)
		where = append(where, fmt.Sprintf("p.play_id = $%d", len(args)))
	}
	if filter.HallID != nil {
		args = append(args, *filter.HallID)
		where = append(where, fmt.Sprintf("p.theatre_hall_id = $%d", len(args)))
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	query := performanceRowSelect + `
		WHERE ` + cond + `
		GROUP BY p.id, pl.title, h.name, h.rows, h.seats_per_row
		ORDER BY p.show_time
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find performances", zap.Error(err))
		return nil, fmt.Errorf("find performances: %w", err)
	}
	defer rows.Close()

	var result []*PerformanceRow
	for rows.Next() {
		var row PerformanceRow
		err := rows.Scan(
			&row.ID,
			&row.PlayID,
			&row.TheatreHallID,
			&row.ShowTime,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.PlayTitle,
			&row.HallName,
			&row.HallRows,
			&row.HallSeatsPerRow,
			&row.TicketsSold,
		)
		if err != nil {
			return nil, fmt.Errorf("scan performance row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate performance rows: %w", err)
	}

	return result, nil
}

func (r *performanceRepository) Update(ctx context.Context, performance *entity.Performance) error {
	query := `
		UPDATE performances
		SET play_id = $2, theatre_hall_id = $3, show_time = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		performance.ID,
		performance.PlayID,
		performance.TheatreHallID,
		performance.ShowTime,
		performance.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update performance",
			zap.Error(err),
			zap.String("performance_id", performance.ID.String()),
		)
		return fmt.Errorf("update performance %s: %w", performance.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("performance %s not found", performance.ID.String())
	}

	return nil
}

func (r *performanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Tickets cascade at the database level
	query := `DELETE FROM performances WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete performance",
			zap.Error(err),
			zap.String("performance_id", id.String()),
		)
		return fmt.Errorf("delete performance %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("performance %s not found", id.String())
	}

	r.log.Info("Performance deleted", zap.String("performance_id", id.String()))
	return nil
}

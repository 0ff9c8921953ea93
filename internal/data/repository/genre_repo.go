package repository

import (
	"context"
	"fmt"
	"strings"

	"theatre-api/internal/data/entity"
	"theatre-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// GenreFilter narrows genre listings by a case-insensitive name substring.
type GenreFilter struct {
	Name string
}

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	FindByName(ctx context.Context, name string) (*entity.Genre, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Genre, error)
	FindAll(ctx context.Context, filter GenreFilter) ([]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `
		INSERT INTO genres (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		genre.ID,
		genre.Name,
		genre.CreatedAt,
		genre.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}

	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = $1
	`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by ID %s: %w", id.String(), err)
	}

	return &genre, nil
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE name = $1
	`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, name).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find genre by name %s: %w", name, err)
	}

	return &genre, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = ANY($1)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find genres by IDs", zap.Error(err))
		return nil, fmt.Errorf("find genres by IDs: %w", err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

func (r *genreRepository) FindAll(ctx context.Context, filter GenreFilter) ([]*entity.Genre, error) {
	cond := "1=1"
	args := []any{}

	if filter.Name != "" {
		args = append(args, "%"+strings.ToLower(filter.Name)+"%")
		cond = "LOWER(name) LIKE $1"
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE ` + cond + `
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find genres",
			zap.Error(err),
			zap.String("name", filter.Name),
		)
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

func scanGenres(rows pgx.Rows) ([]*entity.Genre, error) {
	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.CreatedAt,
			&genre.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

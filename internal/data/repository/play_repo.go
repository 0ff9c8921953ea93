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

// PlayFilter narrows play listings. Title is a case-insensitive substring
// match, GenreIDs/ActorIDs match plays linked to ANY of the given ids.
type PlayFilter struct {
	Title    string
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
}

type PlayRepository interface {
	Create(ctx context.Context, play *entity.Play) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error)
	FindAll(ctx context.Context, filter PlayFilter) ([]*entity.Play, error)
	UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error

	// Many-to-many links
	ReplaceGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error
	ReplaceActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error
	FindGenresByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Genre, error)
	FindActorsByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error)
}

type playRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayRepository(db database.PgxIface, log *zap.Logger) PlayRepository {
	return &playRepository{
		db:  db,
		log: log.With(zap.String("repository", "play")),
	}
}

func (r *playRepository) Create(ctx context.Context, play *entity.Play) error {
	query := `
		INSERT INTO plays (id, title, description, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		play.ID,
		play.Title,
		play.Description,
		play.ImagePath,
		play.CreatedAt,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create play",
			zap.Error(err),
			zap.String("title", play.Title),
		)
		return fmt.Errorf("create play %s: %w", play.Title, err)
	}

	return nil
}

func (r *playRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	query := `
		SELECT id, title, description, image_path, created_at, updated_at
		FROM plays
		WHERE id = $1
	`

	var play entity.Play
	err := r.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Title,
		&play.Description,
		&play.ImagePath,
		&play.CreatedAt,
		&play.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find play by ID",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return nil, fmt.Errorf("find play by ID %s: %w", id.String(), err)
	}

	return &play, nil
}

func (r *playRepository) FindAll(ctx context.Context, filter PlayFilter) ([]*entity.Play, error) {
	where := []string{}
	args := []any{}

	if filter.Title != "" {
		args = append(args, "%"+strings.ToLower(filter.Title)+"%")
		where = append(where, fmt.Sprintf("LOWER(p.title) LIKE $%d", len(args)))
	}
	if len(filter.GenreIDs) > 0 {
		args = append(args, filter.GenreIDs)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM play_genres pg WHERE pg.play_id = p.id AND pg.genre_id = ANY($%d))",
			len(args)))
	}
	if len(filter.ActorIDs) > 0 {
		args = append(args, filter.ActorIDs)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM play_actors pa WHERE pa.play_id = p.id AND pa.actor_id = ANY($%d))",
			len(args)))
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	query := `
		SELECT p.id, p.title, p.description, p.image_path, p.created_at, p.updated_at
		FROM plays p
		WHERE ` + cond + `
		ORDER BY p.title
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find plays",
			zap.Error(err),
			zap.String("title", filter.Title),
		)
		return nil, fmt.Errorf("find plays: %w", err)
	}
	defer rows.Close()

	var plays []*entity.Play
	for rows.Next() {
		var play entity.Play
		err := rows.Scan(
			&play.ID,
			&play.Title,
			&play.Description,
			&play.ImagePath,
			&play.CreatedAt,
			&play.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan play row: %w", err)
		}
		plays = append(plays, &play)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate play rows: %w", err)
	}

	return plays, nil
}

func (r *playRepository) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	query := `UPDATE plays SET image_path = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, imagePath)
	if err != nil {
		r.log.Error("Failed to update play image",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return fmt.Errorf("update play %s image: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s not found", id.String())
	}

	return nil
}

func (r *playRepository) ReplaceGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace genres: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM play_genres WHERE play_id = $1`, playID); err != nil {
		return fmt.Errorf("clear play %s genres: %w", playID.String(), err)
	}

	insert := `
		INSERT INTO play_genres (id, play_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	now := time.Now()
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx, insert, uuid.New(), playID, genreID, now); err != nil {
			return fmt.Errorf("link play %s genre %s: %w", playID.String(), genreID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace genres: %w", err)
	}

	return nil
}

func (r *playRepository) ReplaceActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace actors: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM play_actors WHERE play_id = $1`, playID); err != nil {
		return fmt.Errorf("clear play %s actors: %w", playID.String(), err)
	}

	insert := `
		INSERT INTO play_actors (id, play_id, actor_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	now := time.Now()
	for _, actorID := range actorIDs {
		if _, err := tx.Exec(ctx, insert, uuid.New(), playID, actorID, now); err != nil {
			return fmt.Errorf("link play %s actor %s: %w", playID.String(), actorID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace actors: %w", err)
	}

	return nil
}

func (r *playRepository) FindGenresByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.created_at, g.updated_at
		FROM genres g
		JOIN play_genres pg ON pg.genre_id = g.id
		WHERE pg.play_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to find play genres",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("find genres of play %s: %w", playID.String(), err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

func (r *playRepository) FindActorsByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.created_at, a.updated_at
		FROM actors a
		JOIN play_actors pa ON pa.actor_id = a.id
		WHERE pa.play_id = $1
		ORDER BY a.last_name, a.first_name
	`

	rows, err := r.db.Query(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to find play actors",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("find actors of play %s: %w", playID.String(), err)
	}
	defer rows.Close()

	return scanActors(rows)
}

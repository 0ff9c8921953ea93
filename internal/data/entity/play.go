package entity

import "github.com/google/uuid"

type Play struct {
	Base
	Title       string  `db:"title"`
	Description string  `db:"description"`
	ImagePath   *string `db:"image_path"`
}

// PlayGenre links a play with a genre (many-to-many join row).
type PlayGenre struct {
	BaseSimple
	PlayID  uuid.UUID `db:"play_id"`
	GenreID uuid.UUID `db:"genre_id"`
}

// PlayActor links a play with an actor (many-to-many join row).
type PlayActor struct {
	BaseSimple
	PlayID  uuid.UUID `db:"play_id"`
	ActorID uuid.UUID `db:"actor_id"`
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/playlist-service/internal/domain"
)

// PlaylistPatch carries the mutable playlist fields for partial updates.
// Nil fields are left unchanged.
type PlaylistPatch struct {
	Name        *string
	Description *string
}

// PlaylistRepository defines persistence access for playlists. Every lookup
// that mutates or reads a single playlist is scoped by (id, owner_id) so a
// caller can never reach another user's playlist.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error)
	Update(ctx context.Context, id, ownerID string, patch PlaylistPatch) (*domain.Playlist, error)
	Delete(ctx context.Context, id, ownerID string) error
	AppendSong(ctx context.Context, id, ownerID string, song domain.Song) (*domain.Playlist, error)
}

type playlistRepository struct {
	pool *pgxpool.Pool
}

// NewPlaylistRepository returns a Postgres-backed implementation.
func NewPlaylistRepository(pool *pgxpool.Pool) PlaylistRepository {
	return &playlistRepository{pool: pool}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	if playlist.ID == "" {
		playlist.ID = uuid.NewString()
	}
	if playlist.Songs == nil {
		playlist.Songs = []domain.Song{}
	}

	songs, err := json.Marshal(playlist.Songs)
	if err != nil {
		return fmt.Errorf("marshal songs: %w", err)
	}

	const query = `
        INSERT INTO playlists (id, owner_id, name, description, songs)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		playlist.ID,
		playlist.OwnerID,
		playlist.Name,
		playlist.Description,
		songs,
	).Scan(&playlist.CreatedAt, &playlist.UpdatedAt)
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	const query = `
        SELECT id, owner_id, name, description, songs, created_at, updated_at
        FROM playlists WHERE owner_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := make([]domain.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *playlist)
	}
	return playlists, rows.Err()
}

func (r *playlistRepository) Update(ctx context.Context, id, ownerID string, patch PlaylistPatch) (*domain.Playlist, error) {
	const query = `
        UPDATE playlists
        SET name=COALESCE($3::text, name), description=COALESCE($4::text, description), updated_at=NOW()
        WHERE id=$1 AND owner_id=$2
        RETURNING id, owner_id, name, description, songs, created_at, updated_at`

	return scanPlaylist(r.pool.QueryRow(ctx, query, id, ownerID, patch.Name, patch.Description))
}

func (r *playlistRepository) Delete(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM playlists WHERE id=$1 AND owner_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AppendSong pushes a song onto the playlist's song array in a single
// statement so concurrent appends cannot lose updates.
func (r *playlistRepository) AppendSong(ctx context.Context, id, ownerID string, song domain.Song) (*domain.Playlist, error) {
	entry, err := json.Marshal([]domain.Song{song})
	if err != nil {
		return nil, fmt.Errorf("marshal song: %w", err)
	}

	const query = `
        UPDATE playlists
        SET songs = songs || $3::jsonb, updated_at=NOW()
        WHERE id=$1 AND owner_id=$2
        RETURNING id, owner_id, name, description, songs, created_at, updated_at`

	return scanPlaylist(r.pool.QueryRow(ctx, query, id, ownerID, entry))
}

func scanPlaylist(row pgx.Row) (*domain.Playlist, error) {
	var (
		playlist domain.Playlist
		songs    []byte
	)
	if err := row.Scan(
		&playlist.ID,
		&playlist.OwnerID,
		&playlist.Name,
		&playlist.Description,
		&songs,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(songs, &playlist.Songs); err != nil {
		return nil, fmt.Errorf("unmarshal songs: %w", err)
	}
	if playlist.Songs == nil {
		playlist.Songs = []domain.Song{}
	}
	return &playlist, nil
}

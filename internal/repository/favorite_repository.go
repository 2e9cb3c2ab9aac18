package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kolbe-be/internal/database"
	"kolbe-be/internal/entities"
)

var (
	ErrFavoriteExists   = errors.New("item already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteRepository defines the interface for favorites database operations
type FavoriteRepository interface {
	Create(ctx context.Context, userID, menuItemID int64) (*entities.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]*entities.Favorite, error)
	Delete(ctx context.Context, userID, favoriteID int64) error
}

type favoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new favorites repository
func NewFavoriteRepository(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts a favorite; the (user_id, menu_item_id) unique index
// reports duplicates as ErrFavoriteExists.
func (r *favoriteRepository) Create(ctx context.Context, userID, menuItemID int64) (*entities.Favorite, error) {
	query := `
		INSERT INTO user_favorites (user_id, menu_item_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	fav := entities.Favorite{
		UserID:     userID,
		MenuItemID: menuItemID,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	err := r.db.QueryRowContext(ctx, query, fav.UserID, fav.MenuItemID, fav.CreatedAt).Scan(&fav.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrFavoriteExists
		}
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	return &fav, nil
}

// ListByUser returns the user's favorites, newest first
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.Favorite, error) {
	query := `
		SELECT id, user_id, menu_item_id, created_at
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*entities.Favorite{}
	for rows.Next() {
		var fav entities.Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.MenuItemID, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return favorites, nil
}

// Delete removes a favorite owned by the user
func (r *favoriteRepository) Delete(ctx context.Context, userID, favoriteID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_favorites WHERE id = $1 AND user_id = $2`, favoriteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

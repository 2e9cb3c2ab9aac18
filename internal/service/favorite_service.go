package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kolbe-be/internal/cache"
	"kolbe-be/internal/entities"
	"kolbe-be/internal/menu"
	"kolbe-be/internal/models"
	"kolbe-be/internal/repository"
)

const favoritesCacheTTL = 5 * time.Minute

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrFavoriteExists   = repository.ErrFavoriteExists
	ErrFavoriteNotFound = repository.ErrFavoriteNotFound
)

// FavoriteService defines the interface for per-user favorites
type FavoriteService interface {
	Add(ctx context.Context, userID, menuItemID int64) (*models.FavoriteResponse, error)
	List(ctx context.Context, userID int64) ([]models.FavoriteResponse, error)
	Remove(ctx context.Context, userID, favoriteID int64) error
}

type favoriteService struct {
	repo    repository.FavoriteRepository
	catalog *menu.Catalog
	cache   cache.Cache
	log     *slog.Logger
}

// NewFavoriteService creates a new favorites service. cacheClient may be nil.
func NewFavoriteService(repo repository.FavoriteRepository, catalog *menu.Catalog, cacheClient cache.Cache, log *slog.Logger) FavoriteService {
	if log == nil {
		log = slog.Default()
	}
	svc := &favoriteService{
		repo:    repo,
		catalog: catalog,
		log:     log.With("component", "favorites"),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func (s *favoriteService) Add(ctx context.Context, userID, menuItemID int64) (*models.FavoriteResponse, error) {
	item, ok := s.catalog.Get(menuItemID)
	if !ok {
		return nil, ErrMenuItemNotFound
	}

	fav, err := s.repo.Create(ctx, userID, menuItemID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "favorite added", "user_id", userID, "menu_item_id", menuItemID)
	return &models.FavoriteResponse{
		ID:         fav.ID,
		MenuItemID: fav.MenuItemID,
		CreatedAt:  fav.CreatedAt,
		Item:       &item,
	}, nil
}

func (s *favoriteService) List(ctx context.Context, userID int64) ([]models.FavoriteResponse, error) {
	key := favoritesCacheKey(userID)

	if s.cache != nil {
		var cached []models.FavoriteResponse
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WarnContext(ctx, "favorites cache read failed", "user_id", userID, "error", err)
		}
	}

	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := s.withItems(favs)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, out, favoritesCacheTTL); err != nil {
			s.log.WarnContext(ctx, "favorites cache write failed", "user_id", userID, "error", err)
		}
	}
	return out, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, favoriteID int64) error {
	if err := s.repo.Delete(ctx, userID, favoriteID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "favorite removed", "user_id", userID, "favorite_id", favoriteID)
	return nil
}

func (s *favoriteService) withItems(favs []*entities.Favorite) []models.FavoriteResponse {
	out := make([]models.FavoriteResponse, 0, len(favs))
	for _, f := range favs {
		resp := models.FavoriteResponse{
			ID:         f.ID,
			MenuItemID: f.MenuItemID,
			CreatedAt:  f.CreatedAt,
		}
		if item, ok := s.catalog.Get(f.MenuItemID); ok {
			resp.Item = &item
		}
		out = append(out, resp)
	}
	return out
}

func (s *favoriteService) invalidate(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, favoritesCacheKey(userID)); err != nil {
		s.log.WarnContext(ctx, "favorites cache invalidation failed", "user_id", userID, "error", err)
	}
}

func favoritesCacheKey(userID int64) string {
	return fmt.Sprintf("favorites:user:%d", userID)
}

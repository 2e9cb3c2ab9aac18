package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kolbe-be/internal/middleware"
	"kolbe-be/internal/models"
	"kolbe-be/internal/service"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// AddFavorite handles POST /api/v1/favorites
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	fav, err := fc.favoriteService.Add(c.Request.Context(), userID, req.MenuItemID)
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", "Menu item not found")
		return
	case errors.Is(err, service.ErrFavoriteExists):
		abortWithError(c, http.StatusConflict, "FAVORITE_EXISTS", "This item is already in your favorites")
		return
	case err != nil:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "SERVER_ERROR", "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// ListFavorites handles GET /api/v1/favorites
func (fc *FavoriteController) ListFavorites(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	favorites, err := fc.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "SERVER_ERROR", "Failed to fetch favorites")
		return
	}

	c.JSON(http.StatusOK, models.FavoritesResponse{
		Success:   true,
		Favorites: favorites,
		Count:     len(favorites),
	})
}

// RemoveFavorite handles DELETE /api/v1/favorites/:id
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || favoriteID <= 0 {
		abortWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid favorite id")
		return
	}

	err = fc.favoriteService.Remove(c.Request.Context(), userID, favoriteID)
	switch {
	case errors.Is(err, service.ErrFavoriteNotFound):
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
		return
	case err != nil:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "SERVER_ERROR", "Failed to delete favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Favorite removed successfully",
		"deleted_id": favoriteID,
	})
}

func requireUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User ID not found in token")
		return 0, false
	}
	return userID, true
}

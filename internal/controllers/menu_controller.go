package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kolbe-be/internal/menu"
	"kolbe-be/internal/models"
)

type MenuController struct {
	catalog *menu.Catalog
}

func NewMenuController(catalog *menu.Catalog) *MenuController {
	return &MenuController{catalog: catalog}
}

// ListItems handles GET /api/v1/menu/items
func (mc *MenuController) ListItems(c *gin.Context) {
	items := mc.catalog.List()
	c.JSON(http.StatusOK, models.MenuResponse{
		Success: true,
		Items:   items,
		Count:   len(items),
	})
}

// GetItem handles GET /api/v1/menu/items/:id
func (mc *MenuController) GetItem(c *gin.Context) {
	item, ok := mc.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetPrice handles GET /api/v1/menu/items/:id/price?size=single|double|regular
func (mc *MenuController) GetPrice(c *gin.Context) {
	item, ok := mc.lookup(c)
	if !ok {
		return
	}

	size := strings.ToLower(strings.TrimSpace(c.Query("size")))
	price, err := item.PriceFor(size)
	switch {
	case errors.Is(err, menu.ErrUnknownSize):
		abortWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Size must be regular, single or double")
		return
	case errors.Is(err, menu.ErrSizeUnavailable):
		abortWithError(c, http.StatusUnprocessableEntity, "SIZE_UNAVAILABLE", "This item is not sold in that size")
		return
	}

	if size == "" {
		size = menu.SizeRegular
	}
	c.JSON(http.StatusOK, models.PriceResponse{ItemID: item.ID, Size: size, Price: price})
}

// lookup resolves the :id path parameter, writing the error response itself.
func (mc *MenuController) lookup(c *gin.Context) (menu.Item, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid menu item id")
		return menu.Item{}, false
	}

	item, ok := mc.catalog.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", "Menu item not found")
		return menu.Item{}, false
	}
	return item, true
}

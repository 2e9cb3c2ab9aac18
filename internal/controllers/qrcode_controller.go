package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"kolbe-be/internal/menu"
)

type QRCodeController struct {
	menu        *MenuController
	frontendURL string
}

func NewQRCodeController(catalog *menu.Catalog, frontendURL string) *QRCodeController {
	return &QRCodeController{
		menu:        NewMenuController(catalog),
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// MenuItemURL is the frontend page a table card for the item points at.
func (qc *QRCodeController) MenuItemURL(id int64) string {
	return fmt.Sprintf("%s/menu.html#item-%d", qc.frontendURL, id)
}

// GenerateQRCode handles GET /api/v1/menu/items/:id/qrcode - a QR code for a menu item's page
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	item, ok := qc.menu.lookup(c)
	if !ok {
		return
	}

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(qc.MenuItemURL(item.ID), qrcode.Medium)
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "SERVER_ERROR", "Failed to generate QR code")
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "SERVER_ERROR", "Failed to generate QR code image")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=menu-item-%d.png", item.ID))
	c.Data(http.StatusOK, "image/png", pngData)
}

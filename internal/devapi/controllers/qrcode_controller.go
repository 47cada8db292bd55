package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	shortLinkBase string
}

// NewQRCodeController encodes shortLinkBase + "/" + code into the image
func NewQRCodeController(shortLinkBase string) *QRCodeController {
	return &QRCodeController{shortLinkBase: shortLinkBase}
}

// Generate handles GET /api/qrcode/:shortCode
func (qc *QRCodeController) Generate(c *gin.Context) {
	shortCode := c.Param("shortCode")
	if shortCode == "" {
		respondMessage(c, http.StatusBadRequest, "Short code is required")
		return
	}

	// 256x256, medium error recovery
	png, err := qrcode.Encode(qc.shortLinkBase+"/"+shortCode, qrcode.Medium, 256)
	if err != nil {
		_ = c.Error(err)
		respondMessage(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", png)
}

package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"geramenu/config"
	"geramenu/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// GET /qr returns the owner's public menu URL as a QR PNG.
func QRImage(c *gin.Context) {
	ownerID := c.GetUint("userID")

	png, err := utils.QRCodePNG(config.PublicMenuURL(ownerID), 512)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GET /qr/pdf returns a printable A4 sheet with the QR code, for the table stand.
func QRPDF(c *gin.Context) {
	ownerID := c.GetUint("userID")

	png, err := utils.QRCodePNG(config.PublicMenuURL(ownerID), 512)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render QR code"})
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Scan the QR Code to view the menu:", "", 1, "C", false, 0, "")

	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions("qr", 45, 40, 120, 120, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(170)
	pdf.CellFormat(0, 10, config.PublicMenuURL(ownerID), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=menu.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GET /qr/share returns the public URL plus ready-made social share links.
func ShareLinks(c *gin.Context) {
	ownerID := c.GetUint("userID")
	menuURL := config.PublicMenuURL(ownerID)

	c.JSON(http.StatusOK, gin.H{
		"url":      menuURL,
		"facebook": fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", url.QueryEscape(menuURL)),
		"twitter":  fmt.Sprintf("https://twitter.com/intent/tweet?url=%s", url.QueryEscape(menuURL)),
	})
}

package utils

import qrcode "github.com/skip2/go-qrcode"

// QRCodePNG renders url as a PNG of size x size pixels.
func QRCodePNG(url string, size int) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, size)
}

package utils

import (
	"bytes"
	"image/png"
	"testing"
)

func TestQRCodePNG(t *testing.T) {
	data, err := QRCodePNG("https://gera.example/menu/42", 256)
	if err != nil {
		t.Fatalf("QRCodePNG: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 256 || cfg.Height != 256 {
		t.Errorf("size = %dx%d, want 256x256", cfg.Width, cfg.Height)
	}
}

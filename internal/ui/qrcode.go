package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/boombuler/barcode/qr"
)

// quietZone is the number of light modules around the code.
const quietZone = 4

// RenderQRCode renders content as QR code for a terminal with dark background.
// Two rows of modules are combined into one line with half block characters,
// light modules are drawn, dark modules are left blank.
func RenderQRCode(content string) (string, error) {
	code, err := qr.Encode(content, qr.L, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("error encoding QR code: %w", err)
	}

	bounds := code.Bounds()

	var sb strings.Builder

	for y := bounds.Min.Y - quietZone; y < bounds.Max.Y+quietZone; y += 2 {
		for x := bounds.Min.X - quietZone; x < bounds.Max.X+quietZone; x++ {
			top := isLight(code, bounds, x, y)
			bottom := isLight(code, bounds, x, y+1)

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}

		sb.WriteRune('\n')
	}

	return sb.String(), nil
}

// isLight reports whether the module at x, y is light. Modules outside the code belong to the quiet zone.
func isLight(code image.Image, bounds image.Rectangle, x, y int) bool {
	if !image.Pt(x, y).In(bounds) {
		return true
	}

	r, g, b, _ := code.At(x, y).RGBA()

	return r+g+b > 0
}

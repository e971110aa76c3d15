package services

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(menuID uint) ([]byte, error)
}

// DefaultQRGenerator encodes a share link for a menu item as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(menuID uint) string {
	return fmt.Sprintf("%s/menu/%d", strings.TrimRight(g.BaseURL, "/"), menuID)
}

func (g DefaultQRGenerator) Generate(menuID uint) ([]byte, error) {
	return qrcode.Encode(g.Link(menuID), qrcode.Medium, 256)
}

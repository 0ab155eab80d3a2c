package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order's bill as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) BillURL(orderID int64) string {
	return fmt.Sprintf("%s/api/orders/%d/bill", g.BaseURL, orderID)
}

func (g DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	return qrcode.Encode(g.BillURL(orderID), qrcode.Medium, 256)
}

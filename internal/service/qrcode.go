package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// ReceiptQRGenerator renders the order reference scanned at handoff.
type ReceiptQRGenerator struct{}

func (ReceiptQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("yippee://orders/%d", orderID), qrcode.Medium, 256)
}

var _ QRGenerator = ReceiptQRGenerator{}

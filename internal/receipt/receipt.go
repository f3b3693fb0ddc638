// Package receipt renders printable receipts for charged orders.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"pos_terminal/internal/models"
)

// QRGenerator produces the machine-readable footer of a receipt.
type QRGenerator interface {
	Generate(order models.Order) ([]byte, error)
}

// DefaultQRGenerator encodes a receipt reference URL into a PNG QR code.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(order models.Order) ([]byte, error) {
	qrData := fmt.Sprintf("%s/receipt?order_id=%d&total=%.2f", g.BaseURL, order.ID, order.TotalAmount)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

// Renderer builds receipt artifacts from closed orders and the catalog
// snapshot they were sold from.
type Renderer struct {
	StoreName string
	QR        QRGenerator
}

// Text renders the plain-text receipt body. Product names come from the
// catalog snapshot; lines whose product has since been soft-deleted still
// render, because the order item carries its own captured price.
func (r Renderer) Text(order models.Order, products []models.Product) string {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.StoreName)
	fmt.Fprintf(&b, "Order #%d\n", order.ID)
	if order.DateClose != 0 {
		fmt.Fprintf(&b, "%s\n", time.UnixMilli(order.DateClose).Format("2006-01-02 15:04"))
	}
	b.WriteString(strings.Repeat("-", 32) + "\n")
	for _, item := range order.Items {
		name := names[item.ProductID]
		if name == "" {
			name = fmt.Sprintf("Item %d", item.ProductID)
		}
		fmt.Fprintf(&b, "%-20s %2d x %6.2f\n", name, item.Quantity, item.Price)
	}
	b.WriteString(strings.Repeat("-", 32) + "\n")
	fmt.Fprintf(&b, "%-23s %8.2f\n", "TOTAL", order.TotalAmount)
	return b.String()
}

// QRCode renders the QR footer, when a generator is configured.
func (r Renderer) QRCode(order models.Order) ([]byte, error) {
	if r.QR == nil {
		return nil, fmt.Errorf("no QR generator configured")
	}
	return r.QR.Generate(order)
}

package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos_terminal/internal/models"
)

func TestTextRendersLinesAndTotal(t *testing.T) {
	renderer := Renderer{StoreName: "Corner Cafe"}
	order := models.Order{
		ID: 3,
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 4.5},
			{ProductID: 2, Quantity: 1, Price: 3},
		},
		TotalAmount: 12,
		DateClose:   models.Timestamp(),
	}
	products := []models.Product{
		{ID: 1, Name: "Latte"},
		{ID: 2, Name: "Croissant", IsDeleted: true},
	}

	text := renderer.Text(order, products)
	assert.Contains(t, text, "Corner Cafe")
	assert.Contains(t, text, "Order #3")
	assert.Contains(t, text, "Latte")
	// Soft-deleted products still render from their captured line.
	assert.Contains(t, text, "Croissant")
	assert.Contains(t, text, "12.00")
}

func TestTextFallsBackForUnknownProduct(t *testing.T) {
	renderer := Renderer{StoreName: "Corner Cafe"}
	order := models.Order{ID: 1, Items: []models.OrderItem{{ProductID: 9, Quantity: 1, Price: 5}}}

	text := renderer.Text(order, nil)
	assert.Contains(t, text, "Item 9")
}

func TestQRCodeEncodesPNG(t *testing.T) {
	renderer := Renderer{QR: DefaultQRGenerator{BaseURL: "http://localhost:8080"}}

	png, err := renderer.QRCode(models.Order{ID: 5, TotalAmount: 20})
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeWithoutGenerator(t *testing.T) {
	renderer := Renderer{}
	_, err := renderer.QRCode(models.Order{ID: 1})
	assert.Error(t, err)
}

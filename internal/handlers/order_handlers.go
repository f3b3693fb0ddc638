package handlers

import (
	"net/http"
	"strconv"

	"pos_terminal/internal/models"
	"pos_terminal/internal/receipt"
	"pos_terminal/internal/services"
	"pos_terminal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order lifecycle operations.
type OrderHandler struct {
	terminal services.TerminalService
	receipts receipt.Renderer
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(ts services.TerminalService, rr receipt.Renderer) *OrderHandler {
	return &OrderHandler{terminal: ts, receipts: rr}
}

// CreateOrder opens a new empty order and makes it current.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, err := h.terminal.CreateOrder()
	if err != nil {
		respondStorageAware(c, err, "CreateOrder")
		return
	}
	c.JSON(http.StatusCreated, order)
}

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// AddItemToCurrentOrder adds a catalog product to the current order,
// creating the order if none is open.
func (h *OrderHandler) AddItemToCurrentOrder(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	product, ok := h.terminal.GetItemByID(req.ProductID)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", ""))
		return
	}

	if err := h.terminal.AddItemToCurrentOrder(product); err != nil {
		respondStorageAware(c, err, "AddItemToCurrentOrder")
		return
	}

	st := h.terminal.State()
	order, _ := h.terminal.GetOpenOrderByID(st.CurrentOrderID)
	c.JSON(http.StatusOK, order)
}

// UpdateCurrentOrder replaces the current order with the caller's copy.
// A current order id matching no open order is a silent no-op.
func (h *OrderHandler) UpdateCurrentOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if err := h.terminal.UpdateCurrentOrder(order); err != nil {
		respondStorageAware(c, err, "UpdateCurrentOrder")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order updated"})
}

// ChargeOrder closes the order: the body carries the caller's snapshot of
// the order being charged, the path carries its id.
func (h *OrderHandler) ChargeOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid order id")
		return
	}

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if err := h.terminal.ChargeOrder(order, orderID); err != nil {
		respondStorageAware(c, err, "ChargeOrder")
		return
	}

	closed, _ := h.terminal.GetClosedOrderByID(order.ID)
	c.JSON(http.StatusOK, closed)
}

// ReceiptText renders the plain-text receipt for a closed order.
func (h *OrderHandler) ReceiptText(c *gin.Context) {
	order, ok := h.closedOrderFromPath(c)
	if !ok {
		return
	}
	text := h.receipts.Text(order, h.terminal.State().Products)
	c.String(http.StatusOK, text)
}

// ReceiptQR renders the QR footer PNG for a closed order.
func (h *OrderHandler) ReceiptQR(c *gin.Context) {
	order, ok := h.closedOrderFromPath(c)
	if !ok {
		return
	}
	png, err := h.receipts.QRCode(order)
	if err != nil {
		utils.LogError(err, "ReceiptQR: failed to encode QR code")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to render QR code.", ""))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *OrderHandler) closedOrderFromPath(c *gin.Context) (models.Order, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid order id")
		return models.Order{}, false
	}
	order, ok := h.terminal.GetClosedOrderByID(orderID)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Closed order not found.", ""))
		return models.Order{}, false
	}
	return order, true
}

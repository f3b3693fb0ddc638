package handlers

import (
	"net/http"
	"strconv"

	"pos_terminal/internal/services"
	"pos_terminal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TerminalHandler exposes the state snapshot and the current-selection
// setters.
type TerminalHandler struct {
	terminal services.TerminalService
}

// NewTerminalHandler creates a new TerminalHandler.
func NewTerminalHandler(ts services.TerminalService) *TerminalHandler {
	return &TerminalHandler{terminal: ts}
}

// GetState returns the full state tree snapshot the UI renders from.
func (h *TerminalHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.terminal.State())
}

// SetCurrent dispatches to the selector setter named by the :selector
// path segment. No existence validation is performed on the id.
func (h *TerminalHandler) SetCurrent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid id")
		return
	}

	var setErr error
	selector := c.Param("selector")
	switch selector {
	case "category":
		setErr = h.terminal.SetCurrentCategory(id)
	case "item":
		setErr = h.terminal.SetCurrentItem(id)
	case "table":
		setErr = h.terminal.SetCurrentTable(id)
	case "order":
		setErr = h.terminal.SetCurrentOrder(id)
	case "user":
		setErr = h.terminal.SetCurrentUser(id)
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Unknown selector: "+selector, ""))
		return
	}

	if setErr != nil {
		respondStorageAware(c, setErr, "SetCurrent "+selector)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selector": selector, "id": id})
}

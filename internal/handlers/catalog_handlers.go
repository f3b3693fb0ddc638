package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pos_terminal/internal/models"
	"pos_terminal/internal/services"
	"pos_terminal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes category and item CRUD (soft delete).
type CatalogHandler struct {
	terminal services.TerminalService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(ts services.TerminalService) *CatalogHandler {
	return &CatalogHandler{terminal: ts}
}

// CreateCategory appends a new category. Missing ids are allocated.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(category.Name) {
		utils.RespondValidationFailed(c, "category name is required")
		return
	}
	if err := h.terminal.AddCategory(category); err != nil {
		respondStorageAware(c, err, "CreateCategory")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category created"})
}

// UpdateCategory replaces a category by id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid category id")
		return
	}
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	category.ID = categoryID
	if err := h.terminal.UpdateCategory(category); err != nil {
		respondStorageAware(c, err, "UpdateCategory")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

// DeleteCategory soft-deletes a category.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid category id")
		return
	}
	if err := h.terminal.RemoveCategory(categoryID); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found.", ""))
			return
		}
		respondStorageAware(c, err, "DeleteCategory")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// CreateItem appends a new product. Missing ids are allocated.
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(product.Name) {
		utils.RespondValidationFailed(c, "item name is required")
		return
	}
	if err := h.terminal.AddItem(product); err != nil {
		respondStorageAware(c, err, "CreateItem")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item created"})
}

// UpdateItem replaces a product by id.
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid item id")
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	product.ID = itemID
	if err := h.terminal.UpdateItem(product); err != nil {
		respondStorageAware(c, err, "UpdateItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

// DeleteItem soft-deletes a product.
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid item id")
		return
	}
	if err := h.terminal.RemoveItem(itemID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found.", ""))
			return
		}
		respondStorageAware(c, err, "DeleteItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// ListEnabledTaxes returns the tax checklist the item editor renders.
func (h *CatalogHandler) ListEnabledTaxes(c *gin.Context) {
	taxes := h.terminal.EnabledTaxes()
	if taxes == nil {
		taxes = []models.Tax{}
	}
	c.JSON(http.StatusOK, taxes)
}

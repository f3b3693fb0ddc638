package state

import "pos_terminal/internal/models"

// Patch is a partial update of the state tree. Nil fields are retained
// unchanged; non-nil fields replace the corresponding state field wholesale
// (shallow merge). Slice fields use pointers so "set to empty" is distinct
// from "not present".
type Patch struct {
	Products     *[]models.Product
	Categories   *[]models.Category
	Taxes        *[]models.Tax
	Orders       *[]models.Order
	ClosedOrders *[]models.Order

	CurrentCategoryID *int64
	CurrentOrderID    *int64
	CurrentUserID     *int64
	CurrentTableID    *int64
	CurrentItemID     *int64
}

// apply is the pure reducer: it merges patch into prev and returns the new
// state, leaving prev untouched.
func apply(prev models.TerminalState, patch Patch) models.TerminalState {
	next := prev
	if patch.Products != nil {
		next.Products = *patch.Products
	}
	if patch.Categories != nil {
		next.Categories = *patch.Categories
	}
	if patch.Taxes != nil {
		next.Taxes = *patch.Taxes
	}
	if patch.Orders != nil {
		next.Orders = *patch.Orders
	}
	if patch.ClosedOrders != nil {
		next.ClosedOrders = *patch.ClosedOrders
	}
	if patch.CurrentCategoryID != nil {
		next.CurrentCategoryID = *patch.CurrentCategoryID
	}
	if patch.CurrentOrderID != nil {
		next.CurrentOrderID = *patch.CurrentOrderID
	}
	if patch.CurrentUserID != nil {
		next.CurrentUserID = *patch.CurrentUserID
	}
	if patch.CurrentTableID != nil {
		next.CurrentTableID = *patch.CurrentTableID
	}
	if patch.CurrentItemID != nil {
		next.CurrentItemID = *patch.CurrentItemID
	}
	return next
}

// ID wraps an id for use as a Patch selector field.
func ID(v int64) *int64 {
	return &v
}

// ProductList wraps a product slice for use in a Patch.
func ProductList(v []models.Product) *[]models.Product {
	return &v
}

// CategoryList wraps a category slice for use in a Patch.
func CategoryList(v []models.Category) *[]models.Category {
	return &v
}

// OrderList wraps an order slice for use in a Patch.
func OrderList(v []models.Order) *[]models.Order {
	return &v
}

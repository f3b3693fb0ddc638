package models

import "time"

// Timestamp returns the current time in Unix milliseconds, the unit every
// date field in the state tree is stored in.
func Timestamp() int64 {
	return time.Now().UnixMilli()
}

// ComputeTotal derives an order total as the sum of quantity*price over the
// items. Totals are always recomputed from items, never adjusted in place.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

// NewOrder returns an empty open order with the given id.
func NewOrder(id int64) Order {
	now := Timestamp()
	return Order{
		ID:          id,
		Items:       []OrderItem{},
		TotalAmount: 0,
		DateCreated: now,
		DateUpdated: now,
	}
}

// NewOrderItem builds an order line for a product. The price is captured
// here and stays immune to later catalog price changes.
func NewOrderItem(product Product) OrderItem {
	return OrderItem{
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
	}
}

// NewItem fills defaults for a partially specified product: id allocation
// when the caller left it zero, isDeleted false, lastModifiedTime now.
func NewItem(partial Product, state TerminalState) Product {
	item := partial
	if item.ID == 0 {
		item.ID = NextProductID(state)
	}
	if item.Taxes == nil {
		item.Taxes = []int64{}
	}
	item.IsDeleted = false
	item.LastModifiedTime = Timestamp()
	return item
}

// NewCategory fills defaults for a partially specified category.
func NewCategory(partial Category, state TerminalState) Category {
	category := partial
	if category.ID == 0 {
		category.ID = NextCategoryID(state)
	}
	category.IsDeleted = false
	category.LastModifiedTime = Timestamp()
	return category
}

// NextOrderID allocates an order id strictly greater than the maximum id
// across open and closed orders, so ids are never reused after a charge.
func NextOrderID(state TerminalState) int64 {
	var max int64
	for _, o := range state.Orders {
		if o.ID > max {
			max = o.ID
		}
	}
	for _, o := range state.ClosedOrders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// NextProductID allocates a product id. Soft-deleted products still occupy
// their ids, so the scan covers the whole collection.
func NextProductID(state TerminalState) int64 {
	var max int64
	for _, p := range state.Products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// NextCategoryID allocates a category id.
func NextCategoryID(state TerminalState) int64 {
	var max int64
	for _, c := range state.Categories {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

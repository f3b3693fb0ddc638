package models

// Product is a sellable catalog entry. The `picture` field holds an opaque
// encoded payload (the admin UI stores data URLs there) and may be empty.
type Product struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	ParentID         int64   `json:"parentId"` // category reference, 0 = root
	Price            float64 `json:"price"`
	CostPrice        float64 `json:"costPrice"`
	Color            string  `json:"color"`
	Picture          string  `json:"picture"`
	Taxes            []int64 `json:"taxes"`
	IsDeleted        bool    `json:"isDeleted"`
	LastModifiedTime int64   `json:"lastModifiedTime"`
}

// Category groups products. Categories nest via ParentID (0 = root).
type Category struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	ParentID         int64  `json:"parentId"`
	Color            string `json:"color"`
	IsDeleted        bool   `json:"isDeleted"`
	LastModifiedTime int64  `json:"lastModifiedTime"`
}

// Tax is a percentage applied to products that reference it.
type Tax struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"precentage"` // original schema misspelling, kept as a storage contract
	IsEnabled  bool    `json:"isEnabled"`
}

// OrderItem is one product line within an order. Price is a snapshot of the
// product price at add-time and is never re-read from the catalog.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a customer order. DateClose is zero while the order is open and
// omitted from JSON; once charged the order is append-only history.
type Order struct {
	ID          int64       `json:"id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	DateCreated int64       `json:"dateCreated"`
	DateUpdated int64       `json:"dateUpdated"`
	DateClose   int64       `json:"dateClose,omitempty"`
}

// TerminalState is the full state tree of the terminal. Field names are a
// schema contract for backward-compatible reads: a stored tree missing a
// field keeps the default for that field on load.
type TerminalState struct {
	Products     []Product  `json:"products"`
	Categories   []Category `json:"categories"`
	Taxes        []Tax      `json:"taxes"`
	Orders       []Order    `json:"orders"`
	ClosedOrders []Order    `json:"closedOrders"`

	CurrentCategoryID int64 `json:"currentCategoryId"`
	CurrentOrderID    int64 `json:"currentOrderId"`
	CurrentUserID     int64 `json:"currentUserId"`
	CurrentTableID    int64 `json:"currentTableId"`
	CurrentItemID     int64 `json:"currentItemId"`
}

// DefaultState returns the hard-coded initial tree used when no stored
// state exists or the stored payload cannot be parsed.
func DefaultState() TerminalState {
	return TerminalState{
		Products:     []Product{},
		Categories:   []Category{},
		Orders:       []Order{},
		ClosedOrders: []Order{},
		Taxes: []Tax{
			{ID: 1, Name: "Sales Tax", Percentage: 8.5, IsEnabled: true},
			{ID: 2, Name: "Service Charge", Percentage: 10, IsEnabled: false},
		},
	}
}

// Clone returns a deep copy of the state tree. Snapshots handed to readers
// must not alias the container's backing slices.
func (s TerminalState) Clone() TerminalState {
	out := s
	if s.Products != nil {
		out.Products = make([]Product, len(s.Products))
		for i, p := range s.Products {
			out.Products[i] = p
			out.Products[i].Taxes = cloneSlice(p.Taxes)
		}
	}
	out.Categories = cloneSlice(s.Categories)
	out.Taxes = cloneSlice(s.Taxes)
	out.Orders = cloneOrders(s.Orders)
	out.ClosedOrders = cloneOrders(s.ClosedOrders)
	return out
}

// cloneSlice copies a slice, preserving the nil/empty distinction so that
// snapshots of a freshly defaulted tree compare deep-equal to the original.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneOrders(orders []Order) []Order {
	if orders == nil {
		return nil
	}
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o
		out[i].Items = cloneSlice(o.Items)
	}
	return out
}

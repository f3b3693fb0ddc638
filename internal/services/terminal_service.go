package services

import (
	"errors"

	"github.com/rs/zerolog/log"

	"pos_terminal/internal/models"
	"pos_terminal/internal/state"
)

var (
	// ErrItemNotFound is returned by RemoveItem when the id is unknown.
	ErrItemNotFound = errors.New("the specified item does not exist")
	// ErrCategoryNotFound is returned by RemoveCategory when the id is unknown.
	ErrCategoryNotFound = errors.New("the specified category does not exist")
)

// TerminalService is the only mutation surface over the state tree.
// Consumers read snapshots via State and mutate through the named
// operations; they never write the tree directly.
type TerminalService interface {
	State() models.TerminalState

	AddItemToCurrentOrder(product models.Product) error
	CreateOrder() (models.Order, error)
	UpdateCurrentOrder(order models.Order) error
	ChargeOrder(order models.Order, orderID int64) error

	AddCategory(category models.Category) error
	UpdateCategory(category models.Category) error
	RemoveCategory(categoryID int64) error
	AddItem(product models.Product) error
	UpdateItem(product models.Product) error
	RemoveItem(itemID int64) error

	SetCurrentCategory(categoryID int64) error
	SetCurrentItem(itemID int64) error
	SetCurrentTable(tableID int64) error
	SetCurrentOrder(orderID int64) error
	SetCurrentUser(userID int64) error

	GetItemByID(itemID int64) (models.Product, bool)
	GetCategoryByID(categoryID int64) (models.Category, bool)
	GetOpenOrderByID(orderID int64) (models.Order, bool)
	GetClosedOrderByID(orderID int64) (models.Order, bool)
	EnabledTaxes() []models.Tax
}

type terminalService struct {
	container *state.Container
}

// NewTerminalService creates a TerminalService over the given container.
func NewTerminalService(c *state.Container) TerminalService {
	return &terminalService{container: c}
}

func (s *terminalService) State() models.TerminalState {
	return s.container.GetState()
}

// currentOrder locates the order referenced by currentOrderId within the
// open orders. A selector pointing at a closed or unknown order counts as
// "no current order": a fresh one is created and appended.
func currentOrder(st models.TerminalState) ([]models.Order, int) {
	for i, o := range st.Orders {
		if o.ID == st.CurrentOrderID {
			return st.Orders, i
		}
	}
	orders := append(st.Orders, models.NewOrder(models.NextOrderID(st)))
	return orders, len(orders) - 1
}

func orderItemIndexByID(items []models.OrderItem, productID int64) int {
	for i, it := range items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItemToCurrentOrder adds the selected product to the current order,
// creating the order if none is open. An existing line for the product is
// incremented instead of duplicated; the total is recomputed from scratch.
func (s *terminalService) AddItemToCurrentOrder(product models.Product) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		orders, idx := currentOrder(st)
		order := orders[idx]

		if i := orderItemIndexByID(order.Items, product.ID); i >= 0 {
			order.Items[i].Quantity++
		} else {
			order.Items = append(order.Items, models.NewOrderItem(product))
		}

		order.DateUpdated = models.Timestamp()
		order.TotalAmount = models.ComputeTotal(order.Items)
		orders[idx] = order

		log.Debug().Int64("order_id", order.ID).Int64("product_id", product.ID).
			Float64("total", order.TotalAmount).Msg("Item added to current order")

		return state.Patch{
			Orders:         state.OrderList(orders),
			CurrentOrderID: state.ID(order.ID),
			CurrentItemID:  state.ID(0),
		}, nil
	})
}

// CreateOrder allocates a new empty order, appends it to the open orders
// and makes it current.
func (s *terminalService) CreateOrder() (models.Order, error) {
	var created models.Order
	err := s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		created = models.NewOrder(models.NextOrderID(st))
		orders := append(st.Orders, created)
		return state.Patch{
			Orders:         state.OrderList(orders),
			CurrentOrderID: state.ID(created.ID),
		}, nil
	})
	return created, err
}

// UpdateCurrentOrder replaces the current order with the passed-in one,
// recomputing its total and dateUpdated. If the current order id matches no
// open order nothing is replaced; unlike AddItemToCurrentOrder no order is
// created.
func (s *terminalService) UpdateCurrentOrder(order models.Order) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		orders := st.Orders
		for i := range orders {
			if orders[i].ID == st.CurrentOrderID {
				updated := order
				updated.DateUpdated = models.Timestamp()
				updated.TotalAmount = models.ComputeTotal(updated.Items)
				orders[i] = updated
				break
			}
		}
		return state.Patch{
			Orders:        state.OrderList(orders),
			CurrentItemID: state.ID(0),
		}, nil
	})
}

// ChargeOrder closes an order: it leaves the open orders and is prepended,
// stamped with dateClose, to the closed history. The passed-in order is
// trusted as the caller's consistent snapshot even when orderID is not
// present among the open orders.
func (s *terminalService) ChargeOrder(order models.Order, orderID int64) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		now := models.Timestamp()
		closed := order
		closed.DateUpdated = now
		closed.DateClose = now

		orders := make([]models.Order, 0, len(st.Orders))
		for _, o := range st.Orders {
			if o.ID != orderID {
				orders = append(orders, o)
			}
		}
		closedOrders := append([]models.Order{closed}, st.ClosedOrders...)

		log.Info().Int64("order_id", closed.ID).Float64("total", closed.TotalAmount).
			Msg("Order charged")

		return state.Patch{
			Orders:        state.OrderList(orders),
			ClosedOrders:  state.OrderList(closedOrders),
			CurrentItemID: state.ID(0),
		}, nil
	})
}

// AddCategory appends a category to the catalog. Ids left zero are
// allocated by the model.
func (s *terminalService) AddCategory(category models.Category) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		category = models.NewCategory(category, st)
		return state.Patch{
			Categories: state.CategoryList(append(st.Categories, category)),
		}, nil
	})
}

// UpdateCategory is replace-by-id: the stale entity is filtered out and the
// updated one appended with a refreshed lastModifiedTime. The entity moves
// to the end of the collection.
func (s *terminalService) UpdateCategory(category models.Category) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		categories := make([]models.Category, 0, len(st.Categories))
		for _, c := range st.Categories {
			if c.ID != category.ID {
				categories = append(categories, c)
			}
		}
		category.LastModifiedTime = models.Timestamp()
		return state.Patch{
			Categories: state.CategoryList(append(categories, category)),
		}, nil
	})
}

// RemoveCategory soft-deletes: the category stays in the collection with
// isDeleted set. The tombstone flip does not touch lastModifiedTime.
func (s *terminalService) RemoveCategory(categoryID int64) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		idx := -1
		for i, c := range st.Categories {
			if c.ID == categoryID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return state.Patch{}, ErrCategoryNotFound
		}
		categories := st.Categories
		categories[idx].IsDeleted = true
		return state.Patch{
			Categories: state.CategoryList(categories),
		}, nil
	})
}

// AddItem appends a product to the catalog.
func (s *terminalService) AddItem(product models.Product) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		product = models.NewItem(product, st)
		return state.Patch{
			Products: state.ProductList(append(st.Products, product)),
		}, nil
	})
}

// UpdateItem is replace-by-id, same semantics as UpdateCategory.
func (s *terminalService) UpdateItem(product models.Product) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		products := make([]models.Product, 0, len(st.Products))
		for _, p := range st.Products {
			if p.ID != product.ID {
				products = append(products, p)
			}
		}
		product.LastModifiedTime = models.Timestamp()
		return state.Patch{
			Products: state.ProductList(append(products, product)),
		}, nil
	})
}

// RemoveItem soft-deletes a product, leaving it in place as a tombstone.
func (s *terminalService) RemoveItem(itemID int64) error {
	return s.container.Update(func(st models.TerminalState) (state.Patch, error) {
		idx := -1
		for i, p := range st.Products {
			if p.ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return state.Patch{}, ErrItemNotFound
		}
		products := st.Products
		products[idx].IsDeleted = true
		return state.Patch{
			Products: state.ProductList(products),
		}, nil
	})
}

// Selector setters. No existence validation is performed: the selectors are
// UI cursors, not references the core enforces.

func (s *terminalService) SetCurrentCategory(categoryID int64) error {
	return s.container.SetState(state.Patch{CurrentCategoryID: state.ID(categoryID)})
}

func (s *terminalService) SetCurrentItem(itemID int64) error {
	return s.container.SetState(state.Patch{CurrentItemID: state.ID(itemID)})
}

func (s *terminalService) SetCurrentTable(tableID int64) error {
	return s.container.SetState(state.Patch{CurrentTableID: state.ID(tableID)})
}

func (s *terminalService) SetCurrentOrder(orderID int64) error {
	return s.container.SetState(state.Patch{CurrentOrderID: state.ID(orderID)})
}

func (s *terminalService) SetCurrentUser(userID int64) error {
	return s.container.SetState(state.Patch{CurrentUserID: state.ID(userID)})
}

// Read helpers over the current snapshot.

func (s *terminalService) GetItemByID(itemID int64) (models.Product, bool) {
	for _, p := range s.container.GetState().Products {
		if p.ID == itemID {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *terminalService) GetCategoryByID(categoryID int64) (models.Category, bool) {
	for _, c := range s.container.GetState().Categories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *terminalService) GetOpenOrderByID(orderID int64) (models.Order, bool) {
	for _, o := range s.container.GetState().Orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *terminalService) GetClosedOrderByID(orderID int64) (models.Order, bool) {
	for _, o := range s.container.GetState().ClosedOrders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *terminalService) EnabledTaxes() []models.Tax {
	var taxes []models.Tax
	for _, t := range s.container.GetState().Taxes {
		if t.IsEnabled {
			taxes = append(taxes, t)
		}
	}
	return taxes
}

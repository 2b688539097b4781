// Package shop wires the catalog, cart, bundles, wishlist, and checkout
// pipeline behind a single service that the HTTP layer calls into.
package shop

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/shoplite/internal/domain/bundle"
	"github.com/xenking/shoplite/internal/domain/cart"
	"github.com/xenking/shoplite/internal/domain/checkout"
	"github.com/xenking/shoplite/internal/domain/product"
)

// DiscountType tags the optional checkout discount.
type DiscountType string

const (
	// DiscountNone applies no discount at checkout.
	DiscountNone DiscountType = ""
	// DiscountPercentage reduces the cart total by a percentage.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFlat subtracts a flat amount, floored at zero.
	DiscountFlat DiscountType = "flat"
)

// Receipt records a finalized checkout.
type Receipt struct {
	ID           string
	Total        decimal.Decimal
	DiscountType DiscountType
	CreatedAt    time.Time
}

// ReceiptStore keeps checkout receipts for the process lifetime.
type ReceiptStore interface {
	Append(r Receipt)
	List() []Receipt
}

// Wishlist keeps the set of wished product IDs.
type Wishlist interface {
	Add(productID int)
	Contains(productID int) bool
	IDs() []int
}

// Notifier receives price-drop events and subscription requests.
type Notifier interface {
	Subscribe(productName, email string)
	PriceDropped(productName string, oldPrice, newPrice decimal.Decimal)
}

// Service holds the process-wide shop state and implements every operation
// of the external contract. All state is explicitly constructed and injected;
// nothing here is a hidden singleton.
type Service struct {
	inventory product.Inventory
	bundles   bundle.Catalog
	cart      *cart.Cart
	wishlist  Wishlist
	receipts  ReceiptStore
	notifier  Notifier
}

// NewService creates the shop service over the given collaborators.
func NewService(
	inventory product.Inventory,
	bundles bundle.Catalog,
	c *cart.Cart,
	wishlist Wishlist,
	receipts ReceiptStore,
	notifier Notifier,
) *Service {
	return &Service{
		inventory: inventory,
		bundles:   bundles,
		cart:      c,
		wishlist:  wishlist,
		receipts:  receipts,
		notifier:  notifier,
	}
}

// ListProducts returns the full catalog.
func (s *Service) ListProducts() []*product.Product {
	return s.inventory.List()
}

// AddProduct registers a new catalog entry and returns it with its
// inventory-assigned ID.
func (s *Service) AddProduct(category, name string, price decimal.Decimal, stock int) *product.Product {
	p := product.New(category, name, price, stock)
	s.inventory.Add(p)
	return p
}

// UpdatePrice changes a product's price. When the price drops, subscribers
// are notified.
func (s *Service) UpdatePrice(id int, price decimal.Decimal) (*product.Product, error) {
	p, old, err := s.inventory.SetPrice(id, price)
	if err != nil {
		return nil, err
	}
	if price.LessThan(old) {
		s.notifier.PriceDropped(p.Name, old, price)
	}
	return p, nil
}

// Restock increments a product's stock. Missing products are a silent no-op,
// matching the inventory contract.
func (s *Service) Restock(name string, quantity int) {
	s.inventory.AddStock(name, quantity)
}

// CartRef identifies a product for the add-to-cart operation: by ID when
// positive, otherwise by name.
type CartRef struct {
	ID   int
	Name string
}

// AddToCart looks the product up, verifies stock, appends a line item, and
// decrements inventory stock. Stock is decremented here, at add-to-cart
// time; checkout does not re-validate it.
func (s *Service) AddToCart(ref CartRef, quantity int) (*product.Product, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{Quantity: quantity}
	}

	p, err := s.lookup(ref)
	if err != nil {
		return nil, err
	}

	if !s.inventory.InStock(p.Name, quantity) {
		return nil, &InsufficientStockError{
			Product:   p.Name,
			Requested: quantity,
			Available: p.Stock,
		}
	}

	s.cart.Add(p, quantity)
	s.inventory.ReduceStock(p.Name, quantity)
	return p, nil
}

func (s *Service) lookup(ref CartRef) (*product.Product, error) {
	if ref.ID > 0 {
		if p, err := s.inventory.GetByID(ref.ID); err == nil {
			return p, nil
		}
	}
	if ref.Name != "" {
		return s.inventory.GetByName(ref.Name)
	}
	return nil, product.ErrNotFound
}

// AddBundleToCart adds one unit of every bundle member to the cart. The
// stock check is all-or-nothing: every member must have at least one unit
// available before any mutation happens, and a failure names the first
// member that is out of stock.
func (s *Service) AddBundleToCart(name string) (*bundle.Bundle, error) {
	b, err := s.bundles.GetByName(name)
	if err != nil {
		return nil, err
	}

	for _, p := range b.Products {
		if !s.inventory.InStock(p.Name, 1) {
			return nil, &InsufficientStockError{
				Product:   p.Name,
				Requested: 1,
				Available: p.Stock,
			}
		}
	}

	for _, p := range b.Products {
		s.cart.Add(p, 1)
		s.inventory.ReduceStock(p.Name, 1)
	}
	return b, nil
}

// Cart returns a snapshot of the current cart line items.
func (s *Service) Cart() []cart.LineItem {
	return s.cart.Items()
}

// ListBundles returns the bundle catalog.
func (s *Service) ListBundles() []*bundle.Bundle {
	return s.bundles.List()
}

// CheckoutRequest carries the optional discount for a checkout.
type CheckoutRequest struct {
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
}

// Checkout builds a single-use facade over the cart, applies the requested
// discount if any, finalizes the purchase, and records a receipt. An empty
// cart checks out at zero.
func (s *Service) Checkout(req CheckoutRequest) (Receipt, error) {
	facade := checkout.NewFacade(s.cart)

	switch req.DiscountType {
	case DiscountNone:
	case DiscountPercentage:
		facade.ApplyPercentageDiscount(req.DiscountValue)
	case DiscountFlat:
		facade.ApplyFlatDiscount(req.DiscountValue)
	default:
		return Receipt{}, errors.Wrapf(ErrUnknownDiscount, "%q", req.DiscountType)
	}

	r := Receipt{
		ID:           uuid.New().String(),
		Total:        facade.Checkout(),
		DiscountType: req.DiscountType,
		CreatedAt:    time.Now().UTC(),
	}
	s.receipts.Append(r)
	return r, nil
}

// Receipts returns all recorded checkout receipts.
func (s *Service) Receipts() []Receipt {
	return s.receipts.List()
}

// Search returns products whose name or category contains the query,
// case-insensitively. An empty query matches everything.
func (s *Service) Search(query string) []*product.Product {
	q := strings.ToLower(query)
	var out []*product.Product
	for _, p := range s.inventory.List() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory returns products whose category equals the given one,
// case-insensitively.
func (s *Service) FilterByCategory(category string) []*product.Product {
	var out []*product.Product
	for _, p := range s.inventory.List() {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// AddToWishlist records a product ID on the wishlist. The product must
// exist; re-adding is idempotent.
func (s *Service) AddToWishlist(productID int) error {
	if _, err := s.inventory.GetByID(productID); err != nil {
		return err
	}
	s.wishlist.Add(productID)
	return nil
}

// WishlistProducts resolves the wished IDs against the inventory. IDs whose
// product vanished are skipped; products are never deleted in the current
// scope, so in practice every ID resolves.
func (s *Service) WishlistProducts() []*product.Product {
	var out []*product.Product
	for _, id := range s.wishlist.IDs() {
		if p, err := s.inventory.GetByID(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// SubscribePriceDrop registers an email for price-drop notifications on a
// product name.
func (s *Service) SubscribePriceDrop(productName, email string) {
	s.notifier.Subscribe(productName, email)
}

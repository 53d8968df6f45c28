// Package store is the single source of truth for the storefront:
// catalog, cart, wishlist, session and the two UI visibility flags.
// Mutations are synchronous and immediately visible to every reader;
// derived values (cart total, count) are computed on demand, never
// cached. After each mutation the persisted subset of state is written
// through a persistence.Provider, best effort.
package store

import (
	"context"
	"encoding/json"
	"log"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/persistence"
)

const (
	// DefaultSnapshotKey matches the storage key the original client
	// persisted under, so old snapshots stay readable.
	DefaultSnapshotKey = "ecommerce-store"

	// DefaultAutoCloseDelay is how long the cart panel stays open
	// after an add before closing itself.
	DefaultAutoCloseDelay = 3 * time.Second
)

// The two fixed demo credential pairs. Login only ever succeeds
// against these; register invents a fresh non-admin user instead.
var demoUsers = []struct {
	email    string
	password string
	user     models.User
}{
	{
		email:    "user@example.com",
		password: "password",
		user:     models.User{ID: 1, Name: "John Doe", Email: "user@example.com", IsAdmin: false},
	},
	{
		email:    "admin@example.com",
		password: "admin",
		user:     models.User{ID: 2, Name: "Admin User", Email: "admin@example.com", IsAdmin: true},
	},
}

// Store holds all storefront state behind one RWMutex. Construct it
// with New at the composition root and pass it by reference; there is
// no package-level instance.
type Store struct {
	mu sync.RWMutex

	products   []models.Product
	cart       []models.CartItem
	wishlist   []models.Product
	user       *models.User
	isLoggedIn bool
	isCartOpen bool
	isMenuOpen bool

	provider persistence.Provider
	key      string
	logger   *log.Logger

	autoCloseDelay time.Duration
	autoClose      *time.Timer

	newUserID func() int
}

type Option func(*Store)

// WithProvider wires a snapshot backend. Without one the store is
// purely in-memory.
func WithProvider(p persistence.Provider) Option {
	return func(s *Store) { s.provider = p }
}

// WithSnapshotKey overrides the key snapshots are stored under.
func WithSnapshotKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithAutoCloseDelay overrides the cart auto-close delay. Tests use a
// short one.
func WithAutoCloseDelay(d time.Duration) Option {
	return func(s *Store) { s.autoCloseDelay = d }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New builds a store seeded with the built-in catalog, then restores
// cart, wishlist and session from the provider's snapshot if one
// exists. The catalog and both visibility flags always start fresh.
func New(opts ...Option) *Store {
	s := &Store{
		products:       seedCatalog(),
		key:            DefaultSnapshotKey,
		logger:         log.New(os.Stderr, "", log.LstdFlags),
		autoCloseDelay: DefaultAutoCloseDelay,
		newUserID: func() int {
			return rand.IntN(1000) + 3
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restore()
	return s
}

// ═══════════════════════════════════════════════════════════
// Cart
// ═══════════════════════════════════════════════════════════

// AddToCart merges the product into the cart: an existing item's
// quantity grows by qty, otherwise a new item is appended. A
// non-positive qty is clamped to 1. Adding opens the cart panel and
// schedules the auto-close; any close still pending from an earlier
// add is canceled first.
func (s *Store) AddToCart(product models.Product, qty int) {
	if qty <= 0 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, models.CartItem{Product: product, Quantity: qty})
	}

	s.isCartOpen = true
	s.scheduleAutoCloseLocked()
	s.persistLocked()
}

// RemoveFromCart deletes the item for productID. Unknown ids are a
// no-op.
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	s.persistLocked()
}

// UpdateCartItemQuantity sets (not adds to) the quantity for
// productID. A quantity of zero or less removes the item, same as
// RemoveFromCart. Unknown ids are a no-op.
func (s *Store) UpdateCartItemQuantity(productID, qty int) {
	if qty <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = qty
			break
		}
	}
	s.persistLocked()
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistLocked()
}

// Cart returns a copy of the cart items in insertion order.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal is the sum of price times quantity across the cart.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, item := range s.cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// CartCount is the sum of quantities across the cart.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// ═══════════════════════════════════════════════════════════
// Wishlist
// ═══════════════════════════════════════════════════════════

// ToggleWishlist removes the product if present, appends it if not.
// Applying it twice restores the previous membership, with the order
// of remaining items preserved.
func (s *Store) ToggleWishlist(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == product.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persistLocked()
			return
		}
	}
	s.wishlist = append(s.wishlist, product)
	s.persistLocked()
}

// Wishlist returns a copy of the wishlist in insertion order.
func (s *Store) Wishlist() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// InWishlist reports wishlist membership for a product id.
func (s *Store) InWishlist(productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Session
// ═══════════════════════════════════════════════════════════

// Login checks the credentials against the demo pairs. On a match the
// session becomes that profile and Login returns true; on a mismatch
// the session is left untouched and Login returns false. A second
// login while already authenticated simply overwrites the session.
func (s *Store) Login(email, password string) bool {
	for _, demo := range demoUsers {
		if demo.email == email && demo.password == password {
			user := demo.user

			s.mu.Lock()
			s.user = &user
			s.isLoggedIn = true
			s.persistLocked()
			s.mu.Unlock()
			return true
		}
	}
	return false
}

// Register always succeeds: it creates a fresh non-admin user with a
// generated id and logs the session in. No uniqueness check is done
// against existing emails; there is no account table to check.
func (s *Store) Register(name, email, _ string) models.User {
	user := models.User{
		ID:      s.newUserID(),
		Name:    name,
		Email:   email,
		IsAdmin: false,
	}

	s.mu.Lock()
	s.user = &user
	s.isLoggedIn = true
	s.persistLocked()
	s.mu.Unlock()
	return user
}

// Logout clears the user and the logged-in flag together.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.isLoggedIn = false
	s.persistLocked()
}

// User returns a copy of the session user, or nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsLoggedIn always equals "a user is present".
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoggedIn
}

// ═══════════════════════════════════════════════════════════
// UI visibility flags
// ═══════════════════════════════════════════════════════════

// ToggleCart flips the cart panel; opening it closes the menu. A
// pending auto-close is canceled either way so the user's explicit
// toggle wins.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAutoCloseLocked()
	s.isCartOpen = !s.isCartOpen
	s.isMenuOpen = false
}

// ToggleMenu flips the menu; opening it closes the cart panel.
func (s *Store) ToggleMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAutoCloseLocked()
	s.isMenuOpen = !s.isMenuOpen
	s.isCartOpen = false
}

func (s *Store) IsCartOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isCartOpen
}

func (s *Store) IsMenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isMenuOpen
}

// scheduleAutoCloseLocked arms the auto-close timer, replacing any
// pending one so only the most recent add decides the close time.
func (s *Store) scheduleAutoCloseLocked() {
	s.cancelAutoCloseLocked()
	s.autoClose = time.AfterFunc(s.autoCloseDelay, func() {
		s.mu.Lock()
		s.isCartOpen = false
		s.mu.Unlock()
	})
}

func (s *Store) cancelAutoCloseLocked() {
	if s.autoClose != nil {
		s.autoClose.Stop()
		s.autoClose = nil
	}
}

// ═══════════════════════════════════════════════════════════
// Persistence
// ═══════════════════════════════════════════════════════════

// persistLocked writes the snapshot through the provider. Failures
// are logged and swallowed: the in-memory mutation is never rolled
// back and callers never see a persistence error.
func (s *Store) persistLocked() {
	if s.provider == nil {
		return
	}

	snap := models.Snapshot{
		Cart:       s.cart,
		Wishlist:   s.wishlist,
		User:       s.user,
		IsLoggedIn: s.isLoggedIn,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Printf("⚠️ Failed to encode snapshot: %v", err)
		return
	}
	if err := s.provider.Save(context.Background(), s.key, data); err != nil {
		s.logger.Printf("⚠️ Failed to save snapshot: %v", err)
	}
}

// restore loads the persisted subset at construction time. Only cart,
// wishlist, user and isLoggedIn come back; a missing or unreadable
// snapshot leaves the defaults in place.
func (s *Store) restore() {
	if s.provider == nil {
		return
	}

	data, ok, err := s.provider.Load(context.Background(), s.key)
	if err != nil {
		s.logger.Printf("⚠️ Failed to load snapshot: %v", err)
		return
	}
	if !ok {
		return
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Printf("⚠️ Failed to decode snapshot, starting fresh: %v", err)
		return
	}

	s.mu.Lock()
	s.cart = snap.Cart
	s.wishlist = snap.Wishlist
	s.user = snap.User
	s.isLoggedIn = snap.IsLoggedIn
	s.mu.Unlock()
}

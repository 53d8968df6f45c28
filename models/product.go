package models

// Product represents a catalog entry. Products are immutable from the
// shopper's perspective; only the admin surface may change them.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	InStock     bool    `json:"inStock"`
	Featured    bool    `json:"featured,omitempty"`
}

// CartItem pairs a product with a positive quantity. A cart holds at
// most one CartItem per product id; quantity is always >= 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ToggleWishlistRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// CartResponse is the cart plus its derived values. Total and count
// are computed per request, never stored.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

type UIStateResponse struct {
	IsCartOpen bool `json:"is_cart_open"`
	IsMenuOpen bool `json:"is_menu_open"`
}

type CategoryStat struct {
	Name         string  `json:"name"`
	Products     int     `json:"products"`
	InStock      int     `json:"in_stock"`
	AveragePrice float64 `json:"average_price"`
}

type CatalogStatsResponse struct {
	TotalProducts    int            `json:"total_products"`
	InStockProducts  int            `json:"in_stock_products"`
	FeaturedProducts int            `json:"featured_products"`
	AveragePrice     float64        `json:"average_price"`
	AverageRating    float64        `json:"average_rating"`
	Categories       []CategoryStat `json:"categories"`
}

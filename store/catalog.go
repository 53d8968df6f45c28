package store

import (
	"sort"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// seedCatalog returns the built-in product list. The catalog is never
// persisted; every process start gets a fresh copy of this seed.
func seedCatalog() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Minimalist Leather Backpack",
			Description: "Crafted from premium full-grain leather with clean lines and a sleek silhouette. Features multiple compartments and adjustable straps for comfort.",
			Price:       249.99,
			Category:    "accessories",
			Image:       "https://images.unsplash.com/photo-1581605405669-fcdf81165afa",
			Rating:      4.8,
			ReviewCount: 124,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          2,
			Name:        "Essential Cotton T-Shirt",
			Description: "Made from organic cotton with a relaxed fit and minimal detailing. The perfect foundation for any outfit.",
			Price:       39.99,
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
			Rating:      4.5,
			ReviewCount: 89,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          3,
			Name:        "Ceramic Pour-Over Coffee Set",
			Description: "Hand-thrown ceramic coffee dripper and matching mug. The perfect ritual for your morning brew.",
			Price:       79.99,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
			Rating:      4.9,
			ReviewCount: 42,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          4,
			Name:        "Linen Bed Sheets",
			Description: "Stonewashed pure linen for a luxuriously soft feel. Gets softer with each wash.",
			Price:       159.99,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1584100936595-c0654b55a2e6",
			Rating:      4.7,
			ReviewCount: 67,
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Wool Overshirt",
			Description: "A versatile layer crafted from responsibly sourced wool. Works as both a shirt and light jacket.",
			Price:       129.99,
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1543076659-9380cdf10613",
			Rating:      4.6,
			ReviewCount: 36,
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Hand-Crafted Wooden Bowl",
			Description: "Each bowl is unique, carved from a single piece of sustainably harvested maple.",
			Price:       89.99,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1578602079807-0c2534df872f",
			Rating:      4.9,
			ReviewCount: 18,
			InStock:     true,
		},
		{
			ID:          7,
			Name:        "Minimalist Wall Clock",
			Description: "Brushed aluminum with simple markers. Battery-powered quartz movement.",
			Price:       79.99,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c",
			Rating:      4.5,
			ReviewCount: 29,
			InStock:     true,
		},
		{
			ID:          8,
			Name:        "Organic Cotton Sweater",
			Description: "Medium-weight knit perfect for transitional weather. Features a relaxed fit with dropped shoulders.",
			Price:       119.99,
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1576566588028-4147f3842f27",
			Rating:      4.7,
			ReviewCount: 52,
			InStock:     true,
			Featured:    true,
		},
	}
}

// Sort options accepted by FilterProducts.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Filter narrows and orders the catalog. Zero values mean "no
// constraint"; MaxPrice of 0 is treated as unbounded.
type Filter struct {
	Category    string
	InStockOnly bool
	MinPrice    float64
	MaxPrice    float64
	Sort        string
}

// Products returns a copy of the full catalog.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks a product up in the catalog.
func (s *Store) ProductByID(id int) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FilterProducts applies the given filter and sort to the catalog.
// Sorting is stable so ties keep catalog order.
func (s *Store) FilterProducts(f Filter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	default:
		// Featured items first, otherwise catalog order.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Featured && !result[j].Featured
		})
	}

	return result
}

// FeaturedProducts returns the catalog entries flagged as featured.
func (s *Store) FeaturedProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct product categories in the order
// they first appear in the catalog.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// PriceBounds returns the lowest and highest catalog price, used by
// the storefront to size its price-range filter.
func (s *Store) PriceBounds() (min, max float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, p := range s.products {
		if i == 0 || p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

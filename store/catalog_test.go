package store

import (
	"testing"
)

func productIDs(s *Store, f Filter) []int {
	var ids []int
	for _, p := range s.FilterProducts(f) {
		ids = append(ids, p.ID)
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterProducts(t *testing.T) {
	s := New()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{
			name:   "no filter sorts featured first",
			filter: Filter{},
			want:   []int{1, 2, 3, 8, 4, 5, 6, 7},
		},
		{
			name:   "category clothing",
			filter: Filter{Category: "clothing"},
			want:   []int{2, 8, 5},
		},
		{
			name:   "category home by price ascending",
			filter: Filter{Category: "home", Sort: SortPriceLow},
			want:   []int{3, 7, 6, 4},
		},
		{
			name:   "price range",
			filter: Filter{MinPrice: 100, MaxPrice: 200, Sort: SortPriceLow},
			want:   []int{8, 5, 4},
		},
		{
			name:   "max price zero means unbounded",
			filter: Filter{MinPrice: 200},
			want:   []int{1},
		},
		{
			name:   "price descending",
			filter: Filter{Category: "clothing", Sort: SortPriceHigh},
			want:   []int{5, 8, 2},
		},
		{
			name:   "rating keeps catalog order on ties",
			filter: Filter{Sort: SortRating},
			want:   []int{3, 6, 1, 4, 8, 5, 2, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(s, tt.filter)
			if !equalIDs(got, tt.want) {
				t.Errorf("FilterProducts(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestFilterInStockOnly(t *testing.T) {
	s := New()
	// Seed catalog is fully in stock; knock one product out
	s.products[0].InStock = false

	got := productIDs(s, Filter{InStockOnly: true})
	for _, id := range got {
		if id == 1 {
			t.Fatalf("in-stock filter returned out-of-stock product 1: %v", got)
		}
	}
	if len(got) != 7 {
		t.Errorf("expected 7 in-stock products, got %d", len(got))
	}
}

func TestProductByID(t *testing.T) {
	s := New()

	p, ok := s.ProductByID(3)
	if !ok {
		t.Fatal("ProductByID(3) not found")
	}
	if p.Name != "Ceramic Pour-Over Coffee Set" {
		t.Errorf("ProductByID(3).Name = %q", p.Name)
	}

	if _, ok := s.ProductByID(999); ok {
		t.Error("ProductByID(999) should not be found")
	}
}

func TestCategoriesDistinctInFirstSeenOrder(t *testing.T) {
	s := New()
	got := s.Categories()
	want := []string{"accessories", "clothing", "home"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFeaturedProducts(t *testing.T) {
	s := New()
	featured := s.FeaturedProducts()
	if len(featured) != 4 {
		t.Fatalf("expected 4 featured products, got %d", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("product %d returned as featured but is not", p.ID)
		}
	}
}

func TestPriceBounds(t *testing.T) {
	s := New()
	min, max := s.PriceBounds()
	if min != 39.99 {
		t.Errorf("min price = %v, want 39.99", min)
	}
	if max != 249.99 {
		t.Errorf("max price = %v, want 249.99", max)
	}
}

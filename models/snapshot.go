package models

// Snapshot is the subset of store state written to durable storage
// after every mutation. The catalog and the two UI visibility flags
// are deliberately excluded: on reload the catalog reseeds from the
// built-in list and both flags default to false.
type Snapshot struct {
	Cart       []CartItem `json:"cart"`
	Wishlist   []Product  `json:"wishlist"`
	User       *User      `json:"user"`
	IsLoggedIn bool       `json:"isLoggedIn"`
}

package model

import "time"

// Store is a rated business owned by exactly one store owner.
type Store struct {
	ID        int64
	Name      string
	Email     string
	Address   string
	OwnerID   int64
	CreatedAt time.Time
}

// NewStore carries registration input for a store.
type NewStore struct {
	OwnerID int64
	Name    string
	Email   string
	Address string
}

// StoreFilter narrows administrative store listings.
type StoreFilter struct {
	Search string
	SortBy string
	Desc   bool
}

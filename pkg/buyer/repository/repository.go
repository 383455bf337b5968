package repository

import "greengreen/pkg/buyer"

type Repo interface {
	Create(b *buyer.Buyer) error
	// List filters by state and by a crop named in crops_interested; empty
	// arguments match everything.
	List(state, crop string) ([]buyer.Buyer, error)
}

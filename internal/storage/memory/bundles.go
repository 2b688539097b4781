package memory

import (
	"github.com/xenking/shoplite/internal/domain/bundle"
)

var _ bundle.Catalog = (*Bundles)(nil)

// Bundles is a read-only catalog of composite offers, fixed after seeding.
type Bundles struct {
	list []*bundle.Bundle
}

// NewBundles returns a catalog over the given bundles.
func NewBundles(list []*bundle.Bundle) *Bundles {
	return &Bundles{list: list}
}

// List returns all bundles.
func (b *Bundles) List() []*bundle.Bundle {
	out := make([]*bundle.Bundle, len(b.list))
	copy(out, b.list)
	return out
}

// GetByName returns the bundle with the given name.
func (b *Bundles) GetByName(name string) (*bundle.Bundle, error) {
	for _, bd := range b.list {
		if bd.Name == name {
			return bd, nil
		}
	}
	return nil, bundle.ErrNotFound
}

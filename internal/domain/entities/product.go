package entities

import "strings"

// Product is a catalog item volunteers weigh donations against. Entries
// snapshot its metadata at add-item time, so archiving or renaming a family
// never rewrites history.
type Product struct {
	Reference string
	Family    string
	SubFamily string
	IsActive  bool
}

// NewProduct creates an active catalog item. Reference is the natural key.
func NewProduct(reference, family, subFamily string) Product {
	return Product{
		Reference: strings.TrimSpace(reference),
		Family:    strings.TrimSpace(family),
		SubFamily: strings.TrimSpace(subFamily),
		IsActive:  true,
	}
}

func (p *Product) UpdateMetadata(family, subFamily string) {
	p.Family = strings.TrimSpace(family)
	if subFamily != "" {
		p.SubFamily = strings.TrimSpace(subFamily)
	}
}

// Archive fails if the product is already archived.
func (p *Product) Archive() error {
	if !p.IsActive {
		return ErrProductArchived
	}
	p.IsActive = false
	return nil
}

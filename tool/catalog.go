package tool

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidDescriptor = errors.New("tool: invalid descriptor")

// Catalog is an ordered, read-only set of descriptors.
type Catalog struct {
	order  []string
	byName map[string]Descriptor
}

func NewCatalog(descriptors ...Descriptor) (*Catalog, error) {
	catalog := &Catalog{
		order:  make([]string, 0, len(descriptors)),
		byName: make(map[string]Descriptor, len(descriptors)),
	}

	for _, desc := range descriptors {
		if err := validateDescriptor(desc); err != nil {
			return nil, err
		}

		if _, exists := catalog.byName[desc.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate tool %q", ErrInvalidDescriptor, desc.Name)
		}

		catalog.order = append(catalog.order, desc.Name)
		catalog.byName[desc.Name] = desc
	}

	return catalog, nil
}

func MustCatalog(descriptors ...Descriptor) *Catalog {
	catalog, err := NewCatalog(descriptors...)
	if err != nil {
		panic(err)
	}

	return catalog
}

func validateDescriptor(desc Descriptor) error {
	if desc.Name == "" || desc.Path == "" {
		return fmt.Errorf("%w: name and path are required", ErrInvalidDescriptor)
	}

	if desc.Method != http.MethodGet && desc.Method != http.MethodPost {
		return fmt.Errorf("%w: %s: unsupported method %q", ErrInvalidDescriptor, desc.Name, desc.Method)
	}

	if desc.Placement == Body && desc.Method != http.MethodPost {
		return fmt.Errorf("%w: %s: a JSON body needs POST", ErrInvalidDescriptor, desc.Name)
	}

	seen := make(map[string]struct{}, len(desc.Params))

	for _, param := range desc.Params {
		if _, dup := seen[param.Name]; dup {
			return fmt.Errorf("%w: %s: duplicate parameter %q", ErrInvalidDescriptor, desc.Name, param.Name)
		}

		seen[param.Name] = struct{}{}
	}

	return nil
}

func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	desc, ok := c.byName[name]

	return desc, ok
}

func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}

	return out
}

func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Len() int {
	return len(c.order)
}

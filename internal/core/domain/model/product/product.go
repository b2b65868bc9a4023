// Package product provides the Product entity. Products are created once when the
// catalogue is seeded and are only referenced by orders afterwards.
package product

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalogue entry an order can reference by UID.
type Product struct {
	id          int64
	uid         kernel.UID
	name        string
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalogue entry. Name is required, description is optional.
func NewProduct(uid kernel.UID, name string, description string, createdAt time.Time) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setUID(uid),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id int64, uid kernel.UID, name string, description string, createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(uid, name, description, createdAt)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64            { return p.id }
func (p *Product) UID() kernel.UID      { return p.uid }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func (p *Product) setUID(uid kernel.UID) error {
	if err := uid.Validate(); err != nil {
		return err
	}
	p.uid = uid
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

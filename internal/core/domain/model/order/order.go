package order

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

const (
	// DescriptionMinLength is the minimum description length in characters, after trimming.
	DescriptionMinLength = 3

	// DescriptionMaxLength is the maximum description length in characters, after trimming.
	DescriptionMaxLength = 100
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order desk: an order together with the set of
// products it references. The product set is always replaced as a whole.
//
// Order follows these invariants:
//   - uid is a valid public identifier and never changes
//   - description is 3 to 100 characters after trimming
//   - product references are unique within one order
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the storage primary key; zero until the order has been persisted
	id int64

	uid         kernel.UID
	description string
	createdAt   time.Time

	// productUIDs keeps insertion order with duplicates removed
	productUIDs []kernel.UID

	isConstructed bool
}

// NewOrder creates a new order.
//
// Example:
//
//	uid := kernel.NewRandomUID()
//	o, err := order.NewOrder(uid, "Customer ABC order", productUIDs, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(uid kernel.UID, description string, productUIDs []kernel.UID, createdAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUID(uid),
		o.ChangeDescription(description),
		o.ReplaceProducts(productUIDs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(
	id int64,
	uid kernel.UID,
	description string,
	createdAt time.Time,
	productUIDs []kernel.UID,
) (*Order, error) {
	o, err := NewOrder(uid, description, productUIDs, createdAt)
	if err != nil {
		return nil, err
	}
	o.id = id
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their public identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.uid.IsEqual(other.uid)
}

// ID returns the storage primary key, zero for orders not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) UID() kernel.UID {
	return o.uid
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ProductUIDs returns a copy of the referenced product identifiers.
func (o *Order) ProductUIDs() []kernel.UID {
	out := make([]kernel.UID, len(o.productUIDs))
	copy(out, o.productUIDs)
	return out
}

// ChangeDescription trims and validates the new description before applying it.
func (o *Order) ChangeDescription(description string) error {
	normalized, err := NormalizeDescription(description)
	if err != nil {
		return err
	}

	o.description = normalized
	return nil
}

// NormalizeDescription trims description and checks its length in characters.
func NormalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", errs.NewValueIsRequiredError("description")
	}

	length := utf8.RuneCountInString(description)
	if length < DescriptionMinLength || length > DescriptionMaxLength {
		return "", errs.NewValueIsOutOfRangeError("description length", length, DescriptionMinLength, DescriptionMaxLength)
	}

	return description, nil
}

// ReplaceProducts swaps the whole product set. Duplicate identifiers collapse to one entry.
func (o *Order) ReplaceProducts(productUIDs []kernel.UID) error {
	unique := make([]kernel.UID, 0, len(productUIDs))
	seen := make(map[string]struct{}, len(productUIDs))
	for _, uid := range productUIDs {
		if err := uid.Validate(); err != nil {
			return err
		}
		if _, ok := seen[uid.String()]; ok {
			continue
		}
		seen[uid.String()] = struct{}{}
		unique = append(unique, uid)
	}

	o.productUIDs = unique
	return nil
}

func (o *Order) setUID(uid kernel.UID) error {
	if err := uid.Validate(); err != nil {
		return err
	}
	o.uid = uid
	return nil
}

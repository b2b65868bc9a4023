package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order referencing catalogue products.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Office laptops", []string{"UID1PRODUCTAA"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	uid, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	description string
	productUIDs []kernel.UID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the description and parses every product uid.
// productUIDs may be empty.
func NewCreateOrderCommand(description string, productUIDs []string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setProductUIDs(productUIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Description returns the trimmed description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

func (c CreateOrderCommand) ProductUIDs() []kernel.UID {
	return c.productUIDs
}

func (c *CreateOrderCommand) setDescription(description string) error {
	normalized, err := order.NormalizeDescription(description)
	if err != nil {
		return err
	}

	c.description = normalized
	return nil
}

func (c *CreateOrderCommand) setProductUIDs(productUIDs []string) error {
	uids, err := kernel.UIDsFromStrings(productUIDs)
	if err != nil {
		return err
	}

	c.productUIDs = uids
	return nil
}

package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the description and the whole product set of an order.
// An empty product list removes every link.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	uid         kernel.UID
	description string
	productUIDs []kernel.UID

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(uid string, description string, productUIDs []string) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUID(uid),
		cmd.setDescription(description),
		cmd.setProductUIDs(productUIDs),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) UID() kernel.UID {
	return c.uid
}

func (c UpdateOrderCommand) Description() string {
	return c.description
}

func (c UpdateOrderCommand) ProductUIDs() []kernel.UID {
	return c.productUIDs
}

func (c *UpdateOrderCommand) setUID(uid string) error {
	parsed, err := kernel.UIDFromString(uid)
	if err != nil {
		return err
	}

	c.uid = parsed
	return nil
}

func (c *UpdateOrderCommand) setDescription(description string) error {
	normalized, err := order.NormalizeDescription(description)
	if err != nil {
		return err
	}

	c.description = normalized
	return nil
}

func (c *UpdateOrderCommand) setProductUIDs(productUIDs []string) error {
	uids, err := kernel.UIDsFromStrings(productUIDs)
	if err != nil {
		return err
	}

	c.productUIDs = uids
	return nil
}

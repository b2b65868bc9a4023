package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order and its product links.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	uid kernel.UID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(uid string) (DeleteOrderCommand, error) {
	parsed, err := kernel.UIDFromString(uid)
	if err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		uid:   parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) UID() kernel.UID {
	return c.uid
}

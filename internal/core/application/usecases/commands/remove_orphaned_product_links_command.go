package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

// RemoveOrphanedProductLinksCommand triggers deletion of association rows whose order
// or product no longer exists.
//
// Example:
//
//	cmd := NewRemoveOrphanedProductLinksCommand()
//	removed, err := handler.Handle(ctx, cmd)
type RemoveOrphanedProductLinksCommand struct {
	guard guard.ConstructorGuard
}

var ErrRemoveOrphanedProductLinksCommandIsNotConstructed = errors.New(
	"RemoveOrphanedProductLinksCommand must be created via NewRemoveOrphanedProductLinksCommand constructor",
)

func NewRemoveOrphanedProductLinksCommand() RemoveOrphanedProductLinksCommand {
	return RemoveOrphanedProductLinksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c RemoveOrphanedProductLinksCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrphanedProductLinksCommandIsNotConstructed)
}

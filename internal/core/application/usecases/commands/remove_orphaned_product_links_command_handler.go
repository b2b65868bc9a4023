package commands

import (
	"context"
)

type RemoveOrphanedProductLinksCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrphanedProductLinksCommandHandler(uowFactory OrderUoWFactory) RemoveOrphanedProductLinksCommandHandler {
	return RemoveOrphanedProductLinksCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many links were removed.
func (h RemoveOrphanedProductLinksCommandHandler) Handle(
	ctx context.Context, cmd RemoveOrphanedProductLinksCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().RemoveOrphanedProductLinks(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

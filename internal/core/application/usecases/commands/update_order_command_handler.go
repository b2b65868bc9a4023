package commands

import (
	"context"
)

// UpdateOrderCommandHandler rewrites an existing order.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order row, verifies the new product references and replaces the
// description and links. A missing order yields errs.ObjectNotFoundError and nothing changes.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.UID())
	if err != nil {
		return err
	}

	if err = verifyProductReferences(ctx, productRepo, cmd.ProductUIDs()); err != nil {
		return err
	}

	if err = aggregate.ChangeDescription(cmd.Description()); err != nil {
		return err
	}
	if err = aggregate.ReplaceProducts(cmd.ProductUIDs()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

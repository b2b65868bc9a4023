package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places new orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewUIDAllocator())
//	cmd, _ := NewCreateOrderCommand("Office laptops", []string{"UID1PRODUCTAA"})
//
//	uid, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  UIDAllocator
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, allocator UIDAllocator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		now:        time.Now,
	}
}

// Handle verifies the product references, allocates an order uid and stores the order
// with its links in one transaction. It returns the new uid; the caller reads the
// stored order back through the query side.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	if err := verifyProductReferences(ctx, productRepo, cmd.ProductUIDs()); err != nil {
		return kernel.UID{}, err
	}

	uid, err := h.allocator.Allocate(ctx, orderUIDScope, orderRepo)
	if err != nil {
		return kernel.UID{}, err
	}

	aggregate, err := order.NewOrder(uid, cmd.Description(), cmd.ProductUIDs(), h.now())
	if err != nil {
		return kernel.UID{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return kernel.UID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UID{}, err
	}

	return uid, nil
}

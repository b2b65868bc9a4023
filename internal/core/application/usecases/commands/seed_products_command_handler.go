package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/product"
)

// SeedProductsCommandHandler inserts the catalogue when no product exists yet.
type SeedProductsCommandHandler struct {
	uowFactory ProductUoWFactory
	allocator  UIDAllocator
	now        func() time.Time
}

func NewSeedProductsCommandHandler(uowFactory ProductUoWFactory, allocator UIDAllocator) SeedProductsCommandHandler {
	return SeedProductsCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		now:        time.Now,
	}
}

// Handle returns the number of products inserted; zero means the catalogue was not empty.
func (h SeedProductsCommandHandler) Handle(ctx context.Context, cmd SeedProductsCommand) (int, error) {
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

	productRepo := uow.ProductRepository()

	count, err := productRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, item := range cmd.Items() {
		uid, err := h.allocator.Allocate(ctx, productUIDScope, productRepo)
		if err != nil {
			return 0, err
		}

		p, err := product.NewProduct(uid, item.Name, item.Description, h.now())
		if err != nil {
			return 0, err
		}

		if err = productRepo.Add(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(cmd.Items()), nil
}

// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, and commits only
// when all steps succeeded; a deferred rollback covers every other exit.
package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

const (
	orderUIDScope   = "orders"
	productUIDScope = "products"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions that only touch orders and their links.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions that only touch the catalogue.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW spans orders and products. Order writes verify product references
	// in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   found, err := uow.ProductRepository().FindByUIDs(ctx, uids)
	//   // ...
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for order writes.
	UoWFactory interface {
		Create() UoW
	}
)

// UIDAllocator hands out identifiers that are free within a scope.
// services.UIDAllocator is the production implementation.
type UIDAllocator interface {
	Allocate(ctx context.Context, scope string, probe services.UIDProbe) (kernel.UID, error)
}

package http_test

import (
	"context"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UID, error) {
	args := m.Called(ctx, cmd)
	uid, _ := args.Get(0).(kernel.UID)
	return uid, args.Error(1)
}

type MockOrderUpdater struct{ mock.Mock }

func (m *MockOrderUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderDeleter struct{ mock.Mock }

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderResponse)
	return orders, args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Handle(ctx context.Context, query queries.GetOrderByUIDQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(queries.OrderResponse)
	return o, args.Error(1)
}

type MockProductLister struct{ mock.Mock }

func (m *MockProductLister) Handle(
	ctx context.Context, query queries.GetAllProductsQuery,
) ([]queries.GetAllProductsQueryResponse, error) {
	args := m.Called(ctx, query)
	products, _ := args.Get(0).([]queries.GetAllProductsQueryResponse)
	return products, args.Error(1)
}
